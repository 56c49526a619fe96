package albums

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
	"github.com/Kredoa/dizifyMusic-API/internal/store"
)

type fakeStore struct {
	created []models.AlbumParams
}

func (f *fakeStore) CreateAlbum(_ context.Context, params models.AlbumParams) (models.Album, error) {
	f.created = append(f.created, params)
	return models.Album{ID: 1, Name: params.Name, Image: params.Image}, nil
}

func (f *fakeStore) AlbumByID(_ context.Context, _ int64) (models.Album, error) {
	return models.Album{}, store.ErrAlbumNotFound
}

func (f *fakeStore) ListAlbums(_ context.Context) ([]models.Album, error) {
	return nil, nil
}

func (f *fakeStore) UpdateAlbum(_ context.Context, _ int64, _ models.AlbumParams) (models.Album, error) {
	return models.Album{}, store.ErrAlbumNotFound
}

func (f *fakeStore) DeleteAlbum(_ context.Context, _ int64) error {
	return store.ErrAlbumNotFound
}

type fakeArtists struct {
	known map[int64]models.Artist
}

func (f fakeArtists) ArtistByID(_ context.Context, id int64) (models.Artist, error) {
	artist, ok := f.known[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	return artist, nil
}

func TestCreateAlbumDefaultsImage(t *testing.T) {
	albums := &fakeStore{}
	svc := New(albums, fakeArtists{known: map[int64]models.Artist{9: {ID: 9}}})

	album, err := svc.Create(context.Background(), models.AlbumParams{Name: "Mezzanine", AuthorID: 9})
	require.NoError(t, err)

	assert.Equal(t, "https://picsum.photos/200", album.Image)
	require.Len(t, albums.created, 1)
	assert.Equal(t, "https://picsum.photos/200", albums.created[0].Image)
}

func TestCreateAlbumKeepsProvidedImage(t *testing.T) {
	albums := &fakeStore{}
	svc := New(albums, fakeArtists{known: map[int64]models.Artist{9: {ID: 9}}})

	album, err := svc.Create(context.Background(), models.AlbumParams{
		Name:     "Mezzanine",
		Image:    "https://example.test/mezzanine.jpg",
		AuthorID: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/mezzanine.jpg", album.Image)
}

func TestCreateAlbumUnknownAuthor(t *testing.T) {
	albums := &fakeStore{}
	svc := New(albums, fakeArtists{})

	_, err := svc.Create(context.Background(), models.AlbumParams{Name: "Mezzanine", AuthorID: 404})
	assert.ErrorIs(t, err, store.ErrArtistNotFound)
	assert.Empty(t, albums.created)
}

func TestCreateAlbumMissingName(t *testing.T) {
	albums := &fakeStore{}
	svc := New(albums, fakeArtists{})

	_, err := svc.Create(context.Background(), models.AlbumParams{AuthorID: 9})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Empty(t, albums.created)
}
