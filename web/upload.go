package web

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"blogserver/storage"
	"blogserver/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const thumbSize = 320

// saveImage stores an uploaded post image and returns its storage path.
// No file in the request is fine and yields an empty path.
func saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := "posts/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if _, err := storage.GetDefaultStorage().Save(name, src); err != nil {
		return "", err
	}

	// Thumbnail is best-effort, the post keeps the original either way
	if src2, err := file.Open(); err == nil {
		var thumb bytes.Buffer
		if _, err := utils.CreateThumb(thumbSize, src2, &thumb); err == nil {
			_, _ = storage.GetDefaultStorage().Save(name+".thumb.jpg", &thumb)
		}
		src2.Close()
	}
	return name, nil
}

// Media serves stored images.
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		notFound(c)
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
