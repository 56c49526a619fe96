package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
	"github.com/Kredoa/dizifyMusic-API/internal/store"
)

type stubUserSource struct {
	users map[string]models.User
}

func (s stubUserSource) UserByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func TestResolveAuthenticatedUser(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	resolver := NewResolver(tokens, stubUserSource{users: map[string]models.User{
		"alice": {ID: 7, Username: "alice"},
	}})

	token, err := tokens.Issue("alice", false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	user := resolver.Resolve(context.Background(), token)
	if user == nil || user.ID != 7 {
		t.Fatalf("expected user 7, got %+v", user)
	}
}

func TestResolveDegradesToAnonymous(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	resolver := NewResolver(tokens, stubUserSource{users: map[string]models.User{
		"alice": {ID: 7, Username: "alice"},
	}})

	staleToken, err := tokens.Issue("ghost", false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	otherSecret := NewTokenManager("other-secret", time.Hour)
	forged, err := otherSecret.Issue("alice", true)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	expired := NewTokenManager("test-secret", -time.Hour)
	expiredToken, err := expired.Issue("alice", false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not-a-jwt"},
		{"unknown username", staleToken},
		{"wrong signature", forged},
		{"expired", expiredToken},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if user := resolver.Resolve(context.Background(), tc.token); user != nil {
				t.Fatalf("expected anonymous, got %+v", user)
			}
		})
	}
}
