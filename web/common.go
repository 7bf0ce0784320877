package web

import (
	"log"
	"net/http"
	"strconv"

	"blogserver/auth"

	"github.com/gin-gonic/gin"
)

// pageNumber reads the page query parameter. Anything non-numeric counts
// as the first page; out-of-range values are clamped by the paginator.
func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{
		"user": auth.CurrentUser(c),
	})
	c.Abort()
}

func serverError(c *gin.Context, err error) {
	log.Printf("server error on %s: %v", c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "something went wrong")
	c.Abort()
}
