package auth

import (
	"context"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// UserSource is the user lookup the resolver needs.
type UserSource interface {
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// Resolver turns a bearer token into the calling user, or nil for anonymous.
//
// Resolution never fails: a missing token, a bad signature, an expired token
// or an unknown username all degrade to anonymous so that read paths keep
// working for stale principals.
type Resolver struct {
	tokens *TokenManager
	users  UserSource
}

// NewResolver wires a Resolver from a token manager and a user source.
func NewResolver(tokens *TokenManager, users UserSource) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve returns the user behind the token, or nil when anonymous.
func (r *Resolver) Resolve(ctx context.Context, tokenString string) *models.User {
	if tokenString == "" {
		return nil
	}

	claims, err := r.tokens.Parse(tokenString)
	if err != nil {
		return nil
	}

	user, err := r.users.UserByUsername(ctx, claims.Username)
	if err != nil {
		return nil
	}
	return &user
}
