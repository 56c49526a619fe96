package favorites

import (
	"context"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// MarkerStore is the per-target favorite lookup the decorator reads from.
// Lookups return nil without error when no favorite exists.
type MarkerStore interface {
	FavoriteByUserAndAlbum(ctx context.Context, userID, albumID int64) (*models.Favorite, error)
	FavoriteByUserAndTitle(ctx context.Context, userID, titleID int64) (*models.Favorite, error)
}

// DecoratedTitle is a title annotated with the viewer's favorite id, 0 when
// the viewer has not favorited it.
type DecoratedTitle struct {
	models.Title
	FavoriteID int64 `json:"favoriteId"`
}

// DecoratedAlbum is an album annotated with the viewer's favorite ids for
// the album itself and each of its titles. The outer fields shadow the
// embedded ones so the annotations serialize in place.
type DecoratedAlbum struct {
	models.Album
	FavoriteID int64            `json:"favoriteId"`
	Titles     []DecoratedTitle `json:"titles"`
}

// Decorator annotates catalog reads with per-viewer favorite markers.
type Decorator struct {
	store MarkerStore
}

// NewDecorator builds a Decorator reading markers from the given store.
func NewDecorator(store MarkerStore) *Decorator {
	return &Decorator{store: store}
}

// DecorateAlbum annotates a single album for the given viewer. A nil viewer
// is anonymous: every marker is 0 and the store is never consulted.
func (d *Decorator) DecorateAlbum(ctx context.Context, album models.Album, viewer *models.User) (DecoratedAlbum, error) {
	if viewer == nil {
		return anonymousAlbum(album), nil
	}

	decorated := DecoratedAlbum{
		Album:  album,
		Titles: make([]DecoratedTitle, 0, len(album.Titles)),
	}

	favorite, err := d.store.FavoriteByUserAndAlbum(ctx, viewer.ID, album.ID)
	if err != nil {
		return DecoratedAlbum{}, err
	}
	if favorite != nil {
		decorated.FavoriteID = favorite.ID
	}

	for _, title := range album.Titles {
		annotated := DecoratedTitle{Title: title}
		favorite, err := d.store.FavoriteByUserAndTitle(ctx, viewer.ID, title.ID)
		if err != nil {
			return DecoratedAlbum{}, err
		}
		if favorite != nil {
			annotated.FavoriteID = favorite.ID
		}
		decorated.Titles = append(decorated.Titles, annotated)
	}

	return decorated, nil
}

// DecorateAlbums annotates a slice of albums for the given viewer.
func (d *Decorator) DecorateAlbums(ctx context.Context, albums []models.Album, viewer *models.User) ([]DecoratedAlbum, error) {
	decorated := make([]DecoratedAlbum, 0, len(albums))
	for _, album := range albums {
		annotated, err := d.DecorateAlbum(ctx, album, viewer)
		if err != nil {
			return nil, err
		}
		decorated = append(decorated, annotated)
	}
	return decorated, nil
}

func anonymousAlbum(album models.Album) DecoratedAlbum {
	decorated := DecoratedAlbum{
		Album:  album,
		Titles: make([]DecoratedTitle, 0, len(album.Titles)),
	}
	for _, title := range album.Titles {
		decorated.Titles = append(decorated.Titles, DecoratedTitle{Title: title})
	}
	return decorated
}
