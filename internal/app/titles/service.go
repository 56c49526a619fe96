package titles

import (
	"context"
	"errors"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// ErrNameRequired signals a title create without a name.
var ErrNameRequired = errors.New("title name is required")

// ErrInvalidDuration signals a title create with a non-positive duration.
var ErrInvalidDuration = errors.New("title duration must be positive")

// Store describes the title persistence operations required by the service.
type Store interface {
	CreateTitle(ctx context.Context, params models.TitleParams) (models.Title, error)
	TitleByID(ctx context.Context, id int64) (models.Title, error)
	ListTitles(ctx context.Context) ([]models.Title, error)
	UpdateTitle(ctx context.Context, id int64, params models.TitleParams) (models.Title, error)
	DeleteTitle(ctx context.Context, id int64) error
}

// Catalog exposes the lookups needed to resolve a title's author and album.
type Catalog interface {
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
	AlbumByID(ctx context.Context, id int64) (models.Album, error)
}

// Service coordinates track catalog workflows.
type Service interface {
	Create(ctx context.Context, params models.TitleParams) (models.Title, error)
	Get(ctx context.Context, id int64) (models.Title, error)
	List(ctx context.Context) ([]models.Title, error)
	Update(ctx context.Context, id int64, params models.TitleParams) (models.Title, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store   Store
	catalog Catalog
}

// New constructs a titles Service backed by the given collaborators.
func New(store Store, catalog Catalog) Service {
	return &service{store: store, catalog: catalog}
}

func (s *service) Create(ctx context.Context, params models.TitleParams) (models.Title, error) {
	if err := ctx.Err(); err != nil {
		return models.Title{}, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return models.Title{}, ErrNameRequired
	}
	if params.Duration <= 0 {
		return models.Title{}, ErrInvalidDuration
	}
	if _, err := s.catalog.ArtistByID(ctx, params.AuthorID); err != nil {
		return models.Title{}, err
	}
	if params.AlbumID != 0 {
		if _, err := s.catalog.AlbumByID(ctx, params.AlbumID); err != nil {
			return models.Title{}, err
		}
	}
	return s.store.CreateTitle(ctx, params)
}

func (s *service) Get(ctx context.Context, id int64) (models.Title, error) {
	if err := ctx.Err(); err != nil {
		return models.Title{}, err
	}
	return s.store.TitleByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.Title, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListTitles(ctx)
}

func (s *service) Update(ctx context.Context, id int64, params models.TitleParams) (models.Title, error) {
	if err := ctx.Err(); err != nil {
		return models.Title{}, err
	}
	return s.store.UpdateTitle(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteTitle(ctx, id)
}
