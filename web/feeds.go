package web

import (
	"errors"
	"net/http"

	"blogserver/auth"
	"blogserver/config"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Index is the global feed: all posts, newest first.
func Index(c *gin.Context) {
	pageObj, err := models.Paginate(models.GlobalFeed(), pageNumber(c), config.POSTS_PER_PAGE)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"page_obj": &pageObj,
		"user":     auth.CurrentUser(c),
	})
}

// GroupPosts lists the posts tagged to one group.
func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	pageObj, err := models.Paginate(models.GroupFeed(group.ID), pageNumber(c), config.POSTS_PER_PAGE)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"group":    group,
		"page_obj": &pageObj,
		"user":     auth.CurrentUser(c),
	})
}

// Profile lists an author's posts and whether the viewer follows them.
func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	viewer := auth.CurrentUser(c)
	pageObj, err := models.Paginate(models.AuthorFeed(author.ID), pageNumber(c), config.POSTS_PER_PAGE)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"following": models.IsFollowing(viewer.ID, author.ID),
		"page_obj":  &pageObj,
		"user":      viewer,
	})
}

// FollowIndex is the personalized feed of followed authors.
func FollowIndex(c *gin.Context, user *models.User) {
	pageObj, err := models.Paginate(models.FollowingFeed(user.ID), pageNumber(c), config.POSTS_PER_PAGE)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"page_obj": &pageObj,
		"user":     *user,
	})
}
