package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kredoa/dizifyMusic-API/internal/app/favorites"
	"github.com/Kredoa/dizifyMusic-API/internal/models"
	"github.com/Kredoa/dizifyMusic-API/internal/store"
)

type stubFavorites struct {
	createFn func(ctx context.Context, params models.FavoriteParams) (models.Favorite, error)
	getFn    func(ctx context.Context, id int64) (models.Favorite, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Favorite, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubFavorites) Create(ctx context.Context, params models.FavoriteParams) (models.Favorite, error) {
	return s.createFn(ctx, params)
}

func (s stubFavorites) Get(ctx context.Context, id int64) (models.Favorite, error) {
	return s.getFn(ctx, id)
}

func (s stubFavorites) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.listFn(ctx, userID)
}

func (s stubFavorites) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubAlbums struct {
	getFn  func(ctx context.Context, id int64) (models.Album, error)
	listFn func(ctx context.Context) ([]models.Album, error)
}

func (s stubAlbums) Create(_ context.Context, _ models.AlbumParams) (models.Album, error) {
	return models.Album{}, nil
}

func (s stubAlbums) Get(ctx context.Context, id int64) (models.Album, error) {
	return s.getFn(ctx, id)
}

func (s stubAlbums) List(ctx context.Context) ([]models.Album, error) {
	return s.listFn(ctx)
}

func (s stubAlbums) Update(_ context.Context, _ int64, _ models.AlbumParams) (models.Album, error) {
	return models.Album{}, nil
}

func (s stubAlbums) Delete(_ context.Context, _ int64) error {
	return nil
}

type passthroughDecorator struct {
	viewers []*models.User
}

func (d *passthroughDecorator) DecorateAlbum(_ context.Context, album models.Album, viewer *models.User) (favorites.DecoratedAlbum, error) {
	d.viewers = append(d.viewers, viewer)
	decorated := favorites.DecoratedAlbum{Album: album}
	if viewer != nil {
		decorated.FavoriteID = 100
	}
	return decorated, nil
}

func (d *passthroughDecorator) DecorateAlbums(ctx context.Context, albums []models.Album, viewer *models.User) ([]favorites.DecoratedAlbum, error) {
	out := make([]favorites.DecoratedAlbum, 0, len(albums))
	for _, album := range albums {
		decorated, err := d.DecorateAlbum(ctx, album, viewer)
		if err != nil {
			return nil, err
		}
		out = append(out, decorated)
	}
	return out, nil
}

type stubIdentity struct {
	users map[string]*models.User
}

func (s stubIdentity) Resolve(_ context.Context, token string) *models.User {
	return s.users[token]
}

type stubTokens struct{}

func (stubTokens) Issue(username string, _ bool) (string, error) {
	return "token-for-" + username, nil
}

func TestCreateFavoriteEndpoint(t *testing.T) {
	srv := New(nil, nil, nil, nil, nil, stubFavorites{
		createFn: func(_ context.Context, params models.FavoriteParams) (models.Favorite, error) {
			target, err := params.Target()
			if err != nil {
				return models.Favorite{}, err
			}
			return models.Favorite{ID: 42, UserID: params.UserID, Target: target}, nil
		},
	}, nil, stubIdentity{}, stubTokens{})

	body := strings.NewReader(`{"userId": 7, "albumId": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var favorite models.Favorite
	if err := json.NewDecoder(rec.Body).Decode(&favorite); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if favorite.ID != 42 || favorite.Target.Kind != models.TargetAlbum || favorite.Target.ID != 3 {
		t.Fatalf("unexpected favorite: %+v", favorite)
	}
}

func TestCreateFavoriteEndpointRejectsAmbiguousTarget(t *testing.T) {
	srv := New(nil, nil, nil, nil, nil, stubFavorites{
		createFn: func(_ context.Context, params models.FavoriteParams) (models.Favorite, error) {
			_, err := params.Target()
			return models.Favorite{}, err
		},
	}, nil, stubIdentity{}, stubTokens{})

	body := strings.NewReader(`{"userId": 7, "albumId": 3, "titleId": 31}`)
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateFavoriteEndpointConflict(t *testing.T) {
	srv := New(nil, nil, nil, nil, nil, stubFavorites{
		createFn: func(_ context.Context, _ models.FavoriteParams) (models.Favorite, error) {
			return models.Favorite{}, store.ErrFavoriteExists
		},
	}, nil, stubIdentity{}, stubTokens{})

	body := strings.NewReader(`{"userId": 7, "albumId": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteFavoriteEndpoint(t *testing.T) {
	deleted := map[int64]bool{}
	srv := New(nil, nil, nil, nil, nil, stubFavorites{
		deleteFn: func(_ context.Context, id int64) error {
			if deleted[id] {
				return store.ErrFavoriteNotFound
			}
			deleted[id] = true
			return nil
		},
	}, nil, stubIdentity{}, stubTokens{})

	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/42", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"deleted":true}` {
		t.Fatalf("unexpected body: %s", got)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/favorites/42", nil)
	rec = httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetAlbumDecoratesForViewer(t *testing.T) {
	albums := stubAlbums{
		getFn: func(_ context.Context, id int64) (models.Album, error) {
			if id != 3 {
				return models.Album{}, store.ErrAlbumNotFound
			}
			return models.Album{ID: 3, Name: "Mezzanine"}, nil
		},
	}
	decorator := &passthroughDecorator{}
	identity := stubIdentity{users: map[string]*models.User{
		"alice-token": {ID: 7, Username: "alice"},
	}}

	srv := New(nil, nil, albums, nil, nil, stubFavorites{}, decorator, identity, stubTokens{})

	req := httptest.NewRequest(http.MethodGet, "/api/albums/3", nil)
	req.Header.Set("Authorization", "Bearer alice-token")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var decorated struct {
		FavoriteID int64 `json:"favoriteId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&decorated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decorated.FavoriteID != 100 {
		t.Fatalf("expected favorite marker, got %+v", decorated)
	}
}

func TestGetAlbumAnonymousViewer(t *testing.T) {
	albums := stubAlbums{
		getFn: func(_ context.Context, _ int64) (models.Album, error) {
			return models.Album{ID: 3, Name: "Mezzanine"}, nil
		},
	}
	decorator := &passthroughDecorator{}

	srv := New(nil, nil, albums, nil, nil, stubFavorites{}, decorator, stubIdentity{}, stubTokens{})

	req := httptest.NewRequest(http.MethodGet, "/api/albums/3", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(decorator.viewers) != 1 || decorator.viewers[0] != nil {
		t.Fatalf("expected anonymous viewer, got %+v", decorator.viewers)
	}
}

func TestCreateAlbumRequiresAdmin(t *testing.T) {
	identity := stubIdentity{users: map[string]*models.User{
		"alice-token": {ID: 7, Username: "alice"},
		"admin-token": {ID: 1, Username: "root", Admin: true},
	}}
	srv := New(nil, nil, stubAlbums{}, nil, nil, stubFavorites{}, &passthroughDecorator{}, identity, stubTokens{})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"non-admin", "Bearer alice-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusCreated},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/albums", strings.NewReader(`{"name":"Mezzanine","authorId":9}`))
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			srv.Routes().ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
