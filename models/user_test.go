package models

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestUserLogin(t *testing.T) {
	setupTestDB(t)
	mustUser(t, "alice")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "alice", "secret", true},
		{"wrong password", "alice", "nope", false},
		{"unknown user", "nobody", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := UserLogin(tt.username, tt.password)
			if ok != tt.want {
				t.Errorf("UserLogin(%q, %q) ok = %v, want %v", tt.username, tt.password, ok, tt.want)
			}
			if ok && user.Username != tt.username {
				t.Errorf("logged in as %q, want %q", user.Username, tt.username)
			}
		})
	}
}

func TestUserPasswordsAreSalted(t *testing.T) {
	setupTestDB(t)
	a := mustUser(t, "alice")
	b := mustUser(t, "bob") // same password as alice

	if a.Password == b.Password {
		t.Error("same plain password produced the same hash")
	}
}

func TestUserByUsernameNotFound(t *testing.T) {
	setupTestDB(t)
	if _, err := UserByUsername("ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("UserByUsername(ghost) error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	mustUser(t, "alice")
	if _, err := UserCreate("alice", "Alice II", "alice2@example.com", "pw"); err == nil {
		t.Error("duplicate username accepted")
	}
}
