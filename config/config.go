package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS         = ""        // e.g. "example.com,example2.com"
	MYSQL_DSN           = ""        // MySQL will be used if this is set
	SQLITE_FILE         = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS        = "0.0.0.0:8080"
	SESSION_KEY         = "change me in production"
	MEDIA_DIR           = "media" // Default on-disk location for uploaded images
	DEBUG_MODE          = true
	POSTS_PER_PAGE      = 10 // Feed page size
	INDEX_CACHE_SECONDS = 20 // TTL of the cached front page
)

func init() {
	readEnvString("BLOG_TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BLOG_MYSQL_DSN", &MYSQL_DSN)
	readEnvString("BLOG_SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BLOG_BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("BLOG_SESSION_KEY", &SESSION_KEY)
	readEnvString("BLOG_MEDIA_DIR", &MEDIA_DIR)
	readEnvBool("BLOG_DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("BLOG_POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("BLOG_INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
