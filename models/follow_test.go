package models

import (
	"errors"
	"testing"

	"blogserver/db"

	"gorm.io/gorm"
)

func countFollows(t *testing.T, userID, authorID uint64) int64 {
	t.Helper()
	var count int64
	err := db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count follows: %v", err)
	}
	return count
}

func TestFollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob")

	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("second follow: %v", err)
	}
	if got := countFollows(t, b.ID, a.ID); got != 1 {
		t.Errorf("follow edges = %d, want 1", got)
	}
}

func TestSelfFollowIsSilentNoOp(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")

	if err := FollowAuthor(a.ID, a.ID); err != nil {
		t.Fatalf("self follow returned error: %v", err)
	}
	if got := countFollows(t, a.ID, a.ID); got != 0 {
		t.Errorf("self-follow edges = %d, want 0", got)
	}
}

func TestUnfollow(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob")

	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := UnfollowAuthor(b.ID, "alice"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if got := countFollows(t, b.ID, a.ID); got != 0 {
		t.Errorf("follow edges after unfollow = %d, want 0", got)
	}
	// A second unfollow has no edge to remove
	if err := UnfollowAuthor(b.ID, "alice"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second unfollow error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestIsFollowing(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob")

	if IsFollowing(b.ID, a.ID) {
		t.Error("IsFollowing true before following")
	}
	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !IsFollowing(b.ID, a.ID) {
		t.Error("IsFollowing false after following")
	}
	if IsFollowing(a.ID, b.ID) {
		t.Error("IsFollowing true for the reverse direction")
	}
	if IsFollowing(0, a.ID) {
		t.Error("IsFollowing true for the anonymous viewer")
	}
}
