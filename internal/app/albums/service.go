package albums

import (
	"context"
	"errors"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// defaultImage is applied when an album is created without artwork.
const defaultImage = "https://picsum.photos/200"

// ErrNameRequired signals an album create without a name.
var ErrNameRequired = errors.New("album name is required")

// Store describes the album persistence operations required by the service.
type Store interface {
	CreateAlbum(ctx context.Context, params models.AlbumParams) (models.Album, error)
	AlbumByID(ctx context.Context, id int64) (models.Album, error)
	ListAlbums(ctx context.Context) ([]models.Album, error)
	UpdateAlbum(ctx context.Context, id int64, params models.AlbumParams) (models.Album, error)
	DeleteAlbum(ctx context.Context, id int64) error
}

// Artists exposes the author lookup for album creation.
type Artists interface {
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
}

// Service coordinates album catalog workflows.
type Service interface {
	Create(ctx context.Context, params models.AlbumParams) (models.Album, error)
	Get(ctx context.Context, id int64) (models.Album, error)
	List(ctx context.Context) ([]models.Album, error)
	Update(ctx context.Context, id int64, params models.AlbumParams) (models.Album, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store   Store
	artists Artists
}

// New constructs an albums Service backed by the given collaborators.
func New(store Store, artists Artists) Service {
	return &service{store: store, artists: artists}
}

func (s *service) Create(ctx context.Context, params models.AlbumParams) (models.Album, error) {
	if err := ctx.Err(); err != nil {
		return models.Album{}, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return models.Album{}, ErrNameRequired
	}
	if _, err := s.artists.ArtistByID(ctx, params.AuthorID); err != nil {
		return models.Album{}, err
	}
	if strings.TrimSpace(params.Image) == "" {
		params.Image = defaultImage
	}
	return s.store.CreateAlbum(ctx, params)
}

func (s *service) Get(ctx context.Context, id int64) (models.Album, error) {
	if err := ctx.Err(); err != nil {
		return models.Album{}, err
	}
	return s.store.AlbumByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAlbums(ctx)
}

func (s *service) Update(ctx context.Context, id int64, params models.AlbumParams) (models.Album, error) {
	if err := ctx.Err(); err != nil {
		return models.Album{}, err
	}
	return s.store.UpdateAlbum(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteAlbum(ctx, id)
}
