package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

var (
	// ErrUserExists signals a username or email collision on registration.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound signals a lookup for a user that does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials signals a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyPasswordHash keeps Authenticate constant-time when the username is
// unknown.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *Store) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	var user models.User
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, admin, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, $4)
		RETURNING id, username, email, password_hash, admin, created_at, updated_at
	`, username, email, string(hash), now).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Admin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// Authenticate checks a username/password pair and returns the matching
// user. A bcrypt compare runs even when the username is unknown so the two
// failure modes are indistinguishable by timing.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UserByID fetches a user by primary key.
func (s *Store) UserByID(ctx context.Context, id int64) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

// UserByUsername fetches a user by username.
func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, admin, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username))
}

func (s *Store) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Admin, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}
