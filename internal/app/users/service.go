package users

import (
	"context"
	"errors"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// ErrMissingFields signals a registration with a blank username, email or
// password.
var ErrMissingFields = errors.New("username, email and password are required")

// Store describes the user persistence operations required by the service.
type Store interface {
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// Service coordinates account workflows.
type Service interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type service struct {
	store Store
}

// New constructs a users Service backed by the given store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, username, email, password string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	return s.store.CreateUser(ctx, username, email, password)
}

func (s *service) Login(ctx context.Context, username, password string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.Authenticate(ctx, username, password)
}

func (s *service) Get(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.UserByID(ctx, id)
}

func (s *service) GetByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.UserByUsername(ctx, username)
}
