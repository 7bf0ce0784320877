package models

import (
	"blogserver/db"
	"blogserver/utils"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.Email = email
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

// UserByUsername returns gorm.ErrRecordNotFound when no such user exists.
func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}

// Delete removes the user together with their posts, comments and follow
// edges (both directions), all in one transaction. Comments left by others
// on the user's posts go away with the posts.
func (u *User) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id IN (SELECT id FROM posts WHERE author_id = ?)", u.ID).
			Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", u.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", u.ID).Delete(&Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR author_id = ?", u.ID, u.ID).Delete(&Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(u).Error
	})
}
