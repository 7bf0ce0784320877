package models

import (
	"strings"
	"time"

	"blogserver/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime:nano;index"`
	PostID    uint64 `gorm:"not null;index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func (c Comment) CreatedTime() time.Time {
	return time.Unix(0, c.CreatedAt)
}

// CommentCreate fails with gorm.ErrRecordNotFound when the post is missing
// and ErrEmptyText on blank text. Comments are never edited or deleted on
// their own, only together with their post.
func CommentCreate(postID, authorID uint64, text string) (c Comment, err error) {
	if strings.TrimSpace(text) == "" {
		return c, ErrEmptyText
	}
	var post Post
	if err = db.Instance.First(&post, postID).Error; err != nil {
		return
	}
	c.PostID = post.ID
	c.AuthorID = authorID
	c.Text = text
	return c, db.Instance.Create(&c).Error
}
