package models

import (
	"blogserver/db"

	"gorm.io/gorm/clause"
)

// Follow is a directed edge: UserID follows AuthorID. The composite unique
// index is the race-safe backstop for the get-or-create in FollowAuthor.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;index:uniq_user_author,unique,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;index:uniq_user_author,unique,priority:2"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor creates the follow edge if it does not exist yet. Following
// yourself and following someone twice are both silent no-ops.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	follow := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

// UnfollowAuthor removes the edge to the author with the given username.
// Returns gorm.ErrRecordNotFound when no such edge exists.
func UnfollowAuthor(userID uint64, authorUsername string) error {
	var follow Follow
	err := db.Instance.
		Joins("JOIN users ON users.id = follows.author_id").
		Where("follows.user_id = ? AND users.username = ?", userID, authorUsername).
		First(&follow).Error
	if err != nil {
		return err
	}
	return db.Instance.Delete(&follow).Error
}

func IsFollowing(userID, authorID uint64) bool {
	if userID == 0 {
		return false
	}
	var count int64
	err := db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return err == nil && count > 0
}
