package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

type markerKey struct {
	userID   int64
	kind     models.TargetKind
	targetID int64
}

type fakeMarkerStore struct {
	markers map[markerKey]int64
	lookups int
}

func (f *fakeMarkerStore) FavoriteByUserAndAlbum(_ context.Context, userID, albumID int64) (*models.Favorite, error) {
	return f.lookup(userID, models.TargetAlbum, albumID), nil
}

func (f *fakeMarkerStore) FavoriteByUserAndTitle(_ context.Context, userID, titleID int64) (*models.Favorite, error) {
	return f.lookup(userID, models.TargetTitle, titleID), nil
}

func (f *fakeMarkerStore) lookup(userID int64, kind models.TargetKind, targetID int64) *models.Favorite {
	f.lookups++
	id, ok := f.markers[markerKey{userID, kind, targetID}]
	if !ok {
		return nil
	}
	return &models.Favorite{
		ID:     id,
		UserID: userID,
		Target: models.FavoriteTarget{Kind: kind, ID: targetID},
	}
}

func fixtureAlbums() []models.Album {
	return []models.Album{
		{
			ID:   3,
			Name: "Mezzanine",
			Titles: []models.Title{
				{ID: 31, Name: "Angel"},
				{ID: 32, Name: "Teardrop"},
			},
		},
		{
			ID:   4,
			Name: "Blue Lines",
			Titles: []models.Title{
				{ID: 41, Name: "Safe From Harm"},
			},
		},
	}
}

func TestDecorateAlbumsAnonymous(t *testing.T) {
	store := &fakeMarkerStore{markers: map[markerKey]int64{
		{7, models.TargetAlbum, 3}: 100,
	}}
	decorator := NewDecorator(store)

	decorated, err := decorator.DecorateAlbums(context.Background(), fixtureAlbums(), nil)
	require.NoError(t, err)

	assert.Zero(t, store.lookups, "anonymous reads must not touch the store")
	for _, album := range decorated {
		assert.Zero(t, album.FavoriteID)
		for _, title := range album.Titles {
			assert.Zero(t, title.FavoriteID)
		}
	}
}

func TestDecorateAlbumsMarkers(t *testing.T) {
	store := &fakeMarkerStore{markers: map[markerKey]int64{
		{7, models.TargetAlbum, 3}:  100,
		{7, models.TargetTitle, 32}: 101,
	}}
	decorator := NewDecorator(store)
	viewer := &models.User{ID: 7, Username: "alice"}

	decorated, err := decorator.DecorateAlbums(context.Background(), fixtureAlbums(), viewer)
	require.NoError(t, err)
	require.Len(t, decorated, 2)

	assert.Equal(t, int64(100), decorated[0].FavoriteID)
	assert.Zero(t, decorated[0].Titles[0].FavoriteID)
	assert.Equal(t, int64(101), decorated[0].Titles[1].FavoriteID)

	assert.Zero(t, decorated[1].FavoriteID)
	assert.Zero(t, decorated[1].Titles[0].FavoriteID)

	// One lookup per album plus one per nested title.
	assert.Equal(t, 5, store.lookups)
}

func TestDecorateAlbumsViewerIndependence(t *testing.T) {
	store := &fakeMarkerStore{markers: map[markerKey]int64{
		{7, models.TargetAlbum, 3}: 100,
		{8, models.TargetAlbum, 4}: 200,
	}}
	decorator := NewDecorator(store)

	forAlice, err := decorator.DecorateAlbums(context.Background(), fixtureAlbums(), &models.User{ID: 7})
	require.NoError(t, err)
	forBob, err := decorator.DecorateAlbums(context.Background(), fixtureAlbums(), &models.User{ID: 8})
	require.NoError(t, err)

	assert.Equal(t, int64(100), forAlice[0].FavoriteID)
	assert.Zero(t, forAlice[1].FavoriteID)
	assert.Zero(t, forBob[0].FavoriteID)
	assert.Equal(t, int64(200), forBob[1].FavoriteID)
}

func TestDecorateAlbumIdempotent(t *testing.T) {
	store := &fakeMarkerStore{markers: map[markerKey]int64{
		{7, models.TargetAlbum, 3}: 100,
	}}
	decorator := NewDecorator(store)
	viewer := &models.User{ID: 7}
	album := fixtureAlbums()[0]

	first, err := decorator.DecorateAlbum(context.Background(), album, viewer)
	require.NoError(t, err)
	second, err := decorator.DecorateAlbum(context.Background(), album, viewer)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
