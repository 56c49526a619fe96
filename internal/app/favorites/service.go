package favorites

import (
	"context"
	"time"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// Store describes the favorite persistence operations required by the
// service.
type Store interface {
	FavoriteByID(ctx context.Context, id int64) (models.Favorite, error)
	FavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	SaveFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// Catalog exposes the entity lookups needed to resolve a favorite's target.
type Catalog interface {
	AlbumByID(ctx context.Context, id int64) (models.Album, error)
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
	TitleByID(ctx context.Context, id int64) (models.Title, error)
}

// Users exposes the user lookup needed to resolve a favorite's owner.
type Users interface {
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Service coordinates favorite workflows.
type Service interface {
	Create(ctx context.Context, params models.FavoriteParams) (models.Favorite, error)
	Get(ctx context.Context, id int64) (models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store   Store
	catalog Catalog
	users   Users
}

// New constructs a favorites Service backed by the given collaborators.
func New(store Store, catalog Catalog, users Users) Service {
	return &service{store: store, catalog: catalog, users: users}
}

// Create validates the exactly-one-target rule, resolves the referenced
// entity and owner, and persists the favorite. The store receives no write
// when validation or resolution fails.
func (s *service) Create(ctx context.Context, params models.FavoriteParams) (models.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return models.Favorite{}, err
	}

	target, err := params.Target()
	if err != nil {
		return models.Favorite{}, err
	}

	if err := s.resolveTarget(ctx, target); err != nil {
		return models.Favorite{}, err
	}

	if _, err := s.users.UserByID(ctx, params.UserID); err != nil {
		return models.Favorite{}, err
	}

	now := time.Now().UTC()
	return s.store.SaveFavorite(ctx, models.Favorite{
		UserID:    params.UserID,
		Target:    target,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) Get(ctx context.Context, id int64) (models.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return models.Favorite{}, err
	}
	return s.store.FavoriteByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.FavoritesByUser(ctx, userID)
}

// Delete removes a favorite by id. The lookup doubles as the not-found
// precondition; the delete itself is unconditional.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.store.FavoriteByID(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteFavorite(ctx, id)
}

func (s *service) resolveTarget(ctx context.Context, target models.FavoriteTarget) error {
	switch target.Kind {
	case models.TargetAlbum:
		_, err := s.catalog.AlbumByID(ctx, target.ID)
		return err
	case models.TargetArtist:
		_, err := s.catalog.ArtistByID(ctx, target.ID)
		return err
	default:
		_, err := s.catalog.TitleByID(ctx, target.ID)
		return err
	}
}
