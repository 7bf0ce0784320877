package models

import (
	"fmt"
	"strings"
	"testing"

	"blogserver/db"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database,
// named after the test so parallel packages do not share state.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db.Init("", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	user, err := UserCreate(username, username, username+"@example.com", "secret")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return user
}

func mustGroup(t *testing.T, title, slug string) Group {
	t.Helper()
	group := Group{Title: title, Slug: slug, Description: title + " description"}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("create group %q: %v", slug, err)
	}
	return group
}

func mustPost(t *testing.T, author User, text string, groupID *uint64) Post {
	t.Helper()
	post, err := PostCreate(author.ID, text, groupID, "")
	if err != nil {
		t.Fatalf("PostCreate(%q): %v", text, err)
	}
	return post
}
