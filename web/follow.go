package web

import (
	"errors"
	"net/http"

	"blogserver/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileFollow subscribes the user to the author. Following yourself or
// someone you already follow changes nothing and is not an error.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	if err := models.UnfollowAuthor(user.ID, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
