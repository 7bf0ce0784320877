// Package cache holds the rendered-page cache. A single entry per key:
// the stored bytes are served verbatim until the TTL runs out or the key
// is cleared, so the front page tolerates a short staleness window.
package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// IndexKey caches the global feed's default (first page) response.
const IndexKey = "index:default"

type Entry struct {
	Body        []byte
	ContentType string
	Expires     time.Time
}

var (
	pages = cmap.New[Entry]()
	now   = time.Now // swapped in tests
)

func Get(key string) (Entry, bool) {
	entry, ok := pages.Get(key)
	if !ok {
		return Entry{}, false
	}
	if now().After(entry.Expires) {
		pages.Remove(key)
		return Entry{}, false
	}
	return entry, true
}

func Set(key string, body []byte, contentType string, ttl time.Duration) {
	pages.Set(key, Entry{
		Body:        append([]byte(nil), body...),
		ContentType: contentType,
		Expires:     now().Add(ttl),
	})
}

// Clear drops the entry immediately, regardless of remaining TTL.
func Clear(key string) {
	pages.Remove(key)
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageMiddleware serves the stored response when fresh and otherwise lets
// the handler render, keeping the result when it succeeded. Requests that
// ask for an explicit page bypass the cache entirely, as does any request
// the bypass predicate flags. Pages rendered for a logged-in user carry
// their identity, so the caller must bypass those or they leak across
// sessions.
func PageMiddleware(key string, ttl time.Duration, bypass func(*gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("page") != "" || (bypass != nil && bypass(c)) {
			c.Next()
			return
		}
		if entry, ok := Get(key); ok {
			c.Data(http.StatusOK, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()
		if writer.Status() == http.StatusOK {
			Set(key, writer.body.Bytes(), writer.Header().Get("Content-Type"), ttl)
		}
	}
}
