package models

import (
	"errors"
	"fmt"
	"testing"

	"blogserver/db"

	"gorm.io/gorm"
)

// seedPosts creates count posts with strictly increasing timestamps.
func seedPosts(t *testing.T, author User, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		post := Post{
			AuthorID:  author.ID,
			Text:      fmt.Sprintf("post %d", i),
			CreatedAt: int64(i + 1),
		}
		if err := db.Instance.Create(&post).Error; err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
	}
}

func TestGlobalFeedOrderingAndPartition(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	seedPosts(t, a, 27)

	var seen []uint64
	var prevCreated int64
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := Paginate(GlobalFeed(), pageNum, 10)
		if err != nil {
			t.Fatalf("Paginate(page %d): %v", pageNum, err)
		}
		want := 10
		if pageNum == 3 {
			want = 7
		}
		if len(page.Items) != want {
			t.Errorf("page %d has %d items, want %d", pageNum, len(page.Items), want)
		}
		for _, post := range page.Items {
			if prevCreated != 0 && post.CreatedAt >= prevCreated {
				t.Errorf("ordering broken: %d after %d", post.CreatedAt, prevCreated)
			}
			prevCreated = post.CreatedAt
			seen = append(seen, post.ID)
		}
	}
	// Pages partition the feed: no overlap, no gap
	unique := map[uint64]bool{}
	for _, id := range seen {
		if unique[id] {
			t.Errorf("post %d appears on two pages", id)
		}
		unique[id] = true
	}
	if len(unique) != 27 {
		t.Errorf("pages cover %d posts, want 27", len(unique))
	}
}

func TestPaginateClamping(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	seedPosts(t, a, 15)

	tests := []struct {
		name      string
		page      int
		wantNum   int
		wantItems int
	}{
		{"below range", 0, 1, 10},
		{"negative", -3, 1, 10},
		{"last", 2, 2, 5},
		{"beyond last", 99, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(GlobalFeed(), tt.page, 10)
			if err != nil {
				t.Fatalf("Paginate: %v", err)
			}
			if page.Number != tt.wantNum {
				t.Errorf("Number = %d, want %d", page.Number, tt.wantNum)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(page.Items), tt.wantItems)
			}
		})
	}
}

func TestPaginateEmptyFeed(t *testing.T) {
	setupTestDB(t)
	page, err := Paginate(GlobalFeed(), 1, 10)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if page.Number != 1 || page.TotalPages != 1 || len(page.Items) != 0 {
		t.Errorf("empty feed page = %+v", page)
	}
	if page.HasNext() || page.HasPrev() {
		t.Error("empty feed claims neighboring pages")
	}
}

func TestGroupFeed(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	g := mustGroup(t, "Cats", "cats")
	post := mustPost(t, a, "hello", &g.ID)
	mustPost(t, a, "ungrouped", nil)

	group, err := GroupBySlug("cats")
	if err != nil {
		t.Fatalf("GroupBySlug: %v", err)
	}
	page, err := Paginate(GroupFeed(group.ID), 1, 10)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != post.ID {
		t.Errorf("group feed = %+v, want just post %d", page.Items, post.ID)
	}
	if page.Items[0].Author.Username != "alice" {
		t.Errorf("author not preloaded: %+v", page.Items[0].Author)
	}
	if page.Items[0].Group == nil || page.Items[0].Group.Slug != "cats" {
		t.Errorf("group not preloaded: %+v", page.Items[0].Group)
	}

	if _, err := GroupBySlug("other-slug"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GroupBySlug(other-slug) error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestAuthorFeed(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob")
	mine := mustPost(t, a, "mine", nil)
	mustPost(t, b, "theirs", nil)

	page, err := Paginate(AuthorFeed(a.ID), 1, 10)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != mine.ID {
		t.Errorf("author feed = %+v, want just post %d", page.Items, mine.ID)
	}
}

func TestFollowingFeed(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob")
	c := mustUser(t, "carol")
	followed := mustPost(t, a, "followed author", nil)
	mustPost(t, c, "not followed", nil)

	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	page, err := Paginate(FollowingFeed(b.ID), 1, 10)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != followed.ID {
		t.Errorf("following feed = %+v, want just post %d", page.Items, followed.ID)
	}

	// Nobody followed: empty feed
	page, err = Paginate(FollowingFeed(c.ID), 1, 10)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("feed for non-follower = %+v, want empty", page.Items)
	}
}
