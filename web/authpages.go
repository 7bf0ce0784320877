package web

import (
	"net/http"
	"strings"

	"blogserver/auth"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type signupForm struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// safeNext keeps redirects on this site. Anything else falls back to /.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"next": c.Query("next"),
		"user": auth.CurrentUser(c),
	})
}

func LoginSubmit(c *gin.Context) {
	form := loginForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", gin.H{
			"error": "Both username and password are required.",
			"next":  c.PostForm("next"),
			"user":  models.User{},
		})
		return
	}
	user, ok := models.UserLogin(form.Username, form.Password)
	if !ok {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{
			"error": "Wrong username or password.",
			"next":  c.PostForm("next"),
			"user":  models.User{},
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"user": auth.CurrentUser(c),
	})
}

func SignupSubmit(c *gin.Context) {
	form := signupForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{
			"error": "Username, email and password are required.",
			"user":  models.User{},
		})
		return
	}
	user, err := models.UserCreate(form.Username, form.Name, form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{
			"error": "That username or email is already taken.",
			"user":  models.User{},
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}
