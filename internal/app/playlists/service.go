package playlists

import (
	"context"
	"errors"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// ErrNameRequired signals a playlist create without a name.
var ErrNameRequired = errors.New("playlist name is required")

// Store describes the playlist persistence operations required by the
// service.
type Store interface {
	CreatePlaylist(ctx context.Context, params models.PlaylistParams) (models.Playlist, error)
	PlaylistByID(ctx context.Context, id int64) (models.Playlist, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	PlaylistsByUser(ctx context.Context, userID int64) ([]models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, params models.PlaylistParams) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error
}

// Users exposes the owner lookup for playlist creation.
type Users interface {
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Service coordinates playlist workflows.
type Service interface {
	Create(ctx context.Context, params models.PlaylistParams) (models.Playlist, error)
	Get(ctx context.Context, id int64) (models.Playlist, error)
	List(ctx context.Context) ([]models.Playlist, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Playlist, error)
	Update(ctx context.Context, id int64, params models.PlaylistParams) (models.Playlist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	users Users
}

// New constructs a playlists Service backed by the given collaborators.
func New(store Store, users Users) Service {
	return &service{store: store, users: users}
}

func (s *service) Create(ctx context.Context, params models.PlaylistParams) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return models.Playlist{}, ErrNameRequired
	}
	if _, err := s.users.UserByID(ctx, params.UserID); err != nil {
		return models.Playlist{}, err
	}
	return s.store.CreatePlaylist(ctx, params)
}

func (s *service) Get(ctx context.Context, id int64) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	return s.store.PlaylistByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistsByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id int64, params models.PlaylistParams) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	return s.store.UpdatePlaylist(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, id)
}
