package web

import (
	"errors"
	"net/http"
	"strconv"

	"blogserver/auth"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type postForm struct {
	Text  string `form:"text"`
	Group string `form:"group"` // group id, empty for none
}

func (f *postForm) groupID() (*uint64, bool) {
	if f.Group == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(f.Group, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func formErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, models.ErrEmptyText):
		return "Text must not be empty.", true
	case errors.Is(err, models.ErrUnknownGroup):
		return "Pick an existing group.", true
	}
	return "", false
}

func renderPostForm(c *gin.Context, user *models.User, form postForm, isEdit bool, errMsg string) {
	groups, err := models.GroupList()
	if err != nil {
		serverError(c, err)
		return
	}
	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "create_post.tmpl", gin.H{
		"form":    form,
		"groups":  groups,
		"is_edit": isEdit,
		"error":   errMsg,
		"user":    *user,
	})
}

// PostDetail shows one post with its comments, oldest first.
func PostDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return
	}
	comments, err := post.Comments()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"post":     post,
		"comments": comments,
		"form":     "",
		"user":     auth.CurrentUser(c),
	})
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, user, postForm{}, false, "")
}

func PostCreateSubmit(c *gin.Context, user *models.User) {
	form := postForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		renderPostForm(c, user, form, false, err.Error())
		return
	}
	groupID, ok := form.groupID()
	if !ok {
		renderPostForm(c, user, form, false, "Pick an existing group.")
		return
	}
	image, err := saveImage(c)
	if err != nil {
		renderPostForm(c, user, form, false, "The image could not be stored.")
		return
	}
	if _, err := models.PostCreate(user.ID, form.Text, groupID, image); err != nil {
		if msg, ok := formErrorMessage(err); ok {
			renderPostForm(c, user, form, false, msg)
		} else {
			serverError(c, err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// loadOwnPost fetches the post and enforces the ownership rule: anyone
// else is sent back to the detail page instead of an error.
func loadOwnPost(c *gin.Context, user *models.User) (models.Post, bool) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return models.Post{}, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c, err)
		}
		return models.Post{}, false
	}
	if !post.OwnedBy(user.ID) {
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
		return models.Post{}, false
	}
	return post, true
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	form := postForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	renderPostForm(c, user, form, true, "")
}

func PostEditSubmit(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	form := postForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		renderPostForm(c, user, form, true, err.Error())
		return
	}
	groupID, ok := form.groupID()
	if !ok {
		renderPostForm(c, user, form, true, "Pick an existing group.")
		return
	}
	image, err := saveImage(c)
	if err != nil {
		renderPostForm(c, user, form, true, "The image could not be stored.")
		return
	}
	if image == "" {
		image = post.Image // no new upload keeps the old one
	}
	if err := post.Update(form.Text, groupID, image); err != nil {
		if msg, ok := formErrorMessage(err); ok {
			renderPostForm(c, user, form, true, msg)
		} else {
			serverError(c, err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}

// AddComment stores a comment and returns to the detail page. A blank
// comment is dropped on the way, nothing is written.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	text := c.PostForm("text")
	if _, err := models.CommentCreate(id, user.ID, text); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		if !errors.Is(err, models.ErrEmptyText) {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(id, 10)+"/")
}
