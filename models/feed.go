package models

import (
	"blogserver/db"

	"gorm.io/gorm"
)

// Feed queries return gorm queries over posts ordered newest first, with
// author and group preloaded so listings avoid per-row lookups.

func GlobalFeed() *gorm.DB {
	return db.Instance.Model(&Post{}).
		Preload("Author").Preload("Group").
		Order("posts.created_at DESC")
}

func GroupFeed(groupID uint64) *gorm.DB {
	return GlobalFeed().Where("posts.group_id = ?", groupID)
}

func AuthorFeed(authorID uint64) *gorm.DB {
	return GlobalFeed().Where("posts.author_id = ?", authorID)
}

// FollowingFeed returns posts by every author the viewer follows.
func FollowingFeed(viewerID uint64) *gorm.DB {
	return GlobalFeed().
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", viewerID)
}
