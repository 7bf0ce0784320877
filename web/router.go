package web

import (
	"time"

	"blogserver/auth"
	"blogserver/cache"
	"blogserver/config"

	"github.com/gin-gonic/gin"
)

// Register wires all page routes. The front page is the only cached one,
// and only as rendered for anonymous visitors.
func Register(router *gin.Engine) {
	indexTTL := time.Duration(config.INDEX_CACHE_SECONDS) * time.Second
	router.GET("/", cache.PageMiddleware(cache.IndexKey, indexTTL, loggedIn), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreateSubmit)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEditSubmit)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.POST("/profile/:username/follow/", ProfileFollow)
	authRouter.POST("/profile/:username/unfollow/", ProfileUnfollow)

	router.GET(auth.LoginURL, LoginForm)
	router.POST(auth.LoginURL, LoginSubmit)
	router.POST("/auth/logout/", Logout)
	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", SignupSubmit)

	router.GET("/media/*path", Media)

	router.NoRoute(notFound)
}

func loggedIn(c *gin.Context) bool {
	return auth.CurrentUser(c).ID != 0
}
