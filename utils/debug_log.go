package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type debugLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w *debugLogWriter) Write(b []byte) (int, error) {
	if status := w.gc.Writer.Status(); status >= 400 {
		log.Printf("debug: %d on %s %s: %s",
			status, w.gc.Request.Method, w.gc.Request.URL.Path, b)
	}
	return w.ResponseWriter.Write(b)
}

// DebugLogMiddleware logs the body of every error response. It reads the
// bytes before compression, so it must be installed ahead of gzip.
func DebugLogMiddleware(c *gin.Context) {
	c.Writer = &debugLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Next()
}
