package models

import (
	"blogserver/db"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

// GroupBySlug returns gorm.ErrRecordNotFound when no such group exists.
func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}

// Delete removes the group. Posts keep existing with their group cleared.
func (g *Group) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("group_id = ?", g.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
}
