package artists

import (
	"context"
	"errors"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// ErrNameRequired signals an artist create without a name.
var ErrNameRequired = errors.New("artist name is required")

// Store describes the artist persistence operations required by the service.
type Store interface {
	CreateArtist(ctx context.Context, params models.ArtistParams) (models.Artist, error)
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, params models.ArtistParams) (models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
}

// Service coordinates artist catalog workflows.
type Service interface {
	Create(ctx context.Context, params models.ArtistParams) (models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
	Update(ctx context.Context, id int64, params models.ArtistParams) (models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs an artists Service backed by the given store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, params models.ArtistParams) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return models.Artist{}, ErrNameRequired
	}
	return s.store.CreateArtist(ctx, params)
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.ArtistByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Update(ctx context.Context, id int64, params models.ArtistParams) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}
