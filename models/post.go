package models

import (
	"errors"
	"strings"
	"time"

	"blogserver/db"

	"gorm.io/gorm"
)

// Validation errors surfaced to the form layer.
var (
	ErrEmptyText    = errors.New("text must not be empty")
	ErrUnknownGroup = errors.New("no such group")
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime:nano;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:nano"`
	AuthorID  uint64 `gorm:"not null;index"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(300)"` // storage path, empty when no image
}

func PostCreate(authorID uint64, text string, groupID *uint64, image string) (p Post, err error) {
	if err = validatePostFields(text, groupID); err != nil {
		return
	}
	p.AuthorID = authorID
	p.Text = text
	p.GroupID = groupID
	p.Image = image
	return p, db.Instance.Create(&p).Error
}

// PostByID returns gorm.ErrRecordNotFound when no such post exists.
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// Update overwrites text, group and image. CreatedAt is left untouched.
func (p *Post) Update(text string, groupID *uint64, image string) error {
	if err := validatePostFields(text, groupID); err != nil {
		return err
	}
	p.Text = text
	p.GroupID = groupID
	p.Image = image
	return db.Instance.Model(p).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{"text": text, "group_id": groupID, "image": image}).Error
}

// Delete removes the post and its comments in one transaction.
func (p *Post) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

// OwnedBy is the single ownership guard for post mutations.
func (p *Post) OwnedBy(userID uint64) bool {
	return p.AuthorID == userID
}

func (p Post) CreatedTime() time.Time {
	return time.Unix(0, p.CreatedAt)
}

// Comments returns the post's comments, oldest first.
func (p *Post) Comments() (comments []Comment, err error) {
	err = db.Instance.Preload("Author").
		Where("post_id = ?", p.ID).
		Order("created_at ASC").
		Find(&comments).Error
	return
}

func validatePostFields(text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if groupID != nil {
		var count int64
		if err := db.Instance.Model(&Group{}).Where("id = ?", *groupID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownGroup
		}
	}
	return nil
}
