package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/app/albums"
	"github.com/Kredoa/dizifyMusic-API/internal/app/artists"
	"github.com/Kredoa/dizifyMusic-API/internal/app/favorites"
	"github.com/Kredoa/dizifyMusic-API/internal/app/playlists"
	"github.com/Kredoa/dizifyMusic-API/internal/app/titles"
	"github.com/Kredoa/dizifyMusic-API/internal/app/users"
	"github.com/Kredoa/dizifyMusic-API/internal/models"
	"github.com/Kredoa/dizifyMusic-API/internal/store"
)

// TokenIssuer mints access tokens at login.
type TokenIssuer interface {
	Issue(username string, admin bool) (string, error)
}

// IdentityResolver maps a bearer token to the calling user, nil when
// anonymous.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) *models.User
}

// AlbumDecorator annotates album reads with per-viewer favorite markers.
type AlbumDecorator interface {
	DecorateAlbum(ctx context.Context, album models.Album, viewer *models.User) (favorites.DecoratedAlbum, error)
	DecorateAlbums(ctx context.Context, albums []models.Album, viewer *models.User) ([]favorites.DecoratedAlbum, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     users.Service
	artists   artists.Service
	albums    albums.Service
	titles    titles.Service
	playlists playlists.Service
	favorites favorites.Service
	decorator AlbumDecorator
	identity  IdentityResolver
	tokens    TokenIssuer
}

// New constructs a Server from its collaborators.
func New(
	users users.Service,
	artists artists.Service,
	albums albums.Service,
	titles titles.Service,
	playlists playlists.Service,
	favorites favorites.Service,
	decorator AlbumDecorator,
	identity IdentityResolver,
	tokens TokenIssuer,
) *Server {
	return &Server{
		users:     users,
		artists:   artists,
		albums:    albums,
		titles:    titles,
		playlists: playlists,
		favorites: favorites,
		decorator: decorator,
		identity:  identity,
		tokens:    tokens,
	}
}

// Routes exposes the HTTP handlers for the catalog and account surface.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/users/me", s.handleCurrentUser)

	mux.HandleFunc("GET /api/artists", s.handleListArtists)
	mux.HandleFunc("POST /api/artists", s.handleCreateArtist)
	mux.HandleFunc("GET /api/artists/{id}", s.handleGetArtist)
	mux.HandleFunc("PUT /api/artists/{id}", s.handleUpdateArtist)
	mux.HandleFunc("DELETE /api/artists/{id}", s.handleDeleteArtist)

	mux.HandleFunc("GET /api/albums", s.handleListAlbums)
	mux.HandleFunc("POST /api/albums", s.handleCreateAlbum)
	mux.HandleFunc("GET /api/albums/{id}", s.handleGetAlbum)
	mux.HandleFunc("PUT /api/albums/{id}", s.handleUpdateAlbum)
	mux.HandleFunc("DELETE /api/albums/{id}", s.handleDeleteAlbum)

	mux.HandleFunc("GET /api/titles", s.handleListTitles)
	mux.HandleFunc("POST /api/titles", s.handleCreateTitle)
	mux.HandleFunc("GET /api/titles/{id}", s.handleGetTitle)
	mux.HandleFunc("PUT /api/titles/{id}", s.handleUpdateTitle)
	mux.HandleFunc("DELETE /api/titles/{id}", s.handleDeleteTitle)

	mux.HandleFunc("GET /api/playlists", s.handleListPlaylists)
	mux.HandleFunc("POST /api/playlists", s.handleCreatePlaylist)
	mux.HandleFunc("GET /api/playlists/{id}", s.handleGetPlaylist)
	mux.HandleFunc("PUT /api/playlists/{id}", s.handleUpdatePlaylist)
	mux.HandleFunc("DELETE /api/playlists/{id}", s.handleDeletePlaylist)
	mux.HandleFunc("GET /api/users/{id}/playlists", s.handleUserPlaylists)

	mux.HandleFunc("POST /api/favorites", s.handleCreateFavorite)
	mux.HandleFunc("GET /api/favorites/{id}", s.handleGetFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", s.handleDeleteFavorite)
	mux.HandleFunc("GET /api/users/{id}/favorites", s.handleUserFavorites)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

// viewer resolves the optional bearer identity on a read path.
func (s *Server) viewer(r *http.Request) *models.User {
	return s.identity.Resolve(r.Context(), parseBearerToken(r.Header.Get("Authorization")))
}

// requireAdmin resolves the caller and writes 401/403 on failure. The
// returned bool reports whether the handler may proceed.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	caller := s.viewer(r)
	if caller == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return false
	}
	if !caller.Admin {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin privileges required"})
		return false
	}
	return true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// errorStatus maps service and store errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidFavoriteTarget),
		errors.Is(err, users.ErrMissingFields),
		errors.Is(err, artists.ErrNameRequired),
		errors.Is(err, albums.ErrNameRequired),
		errors.Is(err, titles.ErrNameRequired),
		errors.Is(err, titles.ErrInvalidDuration),
		errors.Is(err, playlists.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrArtistNotFound),
		errors.Is(err, store.ErrAlbumNotFound),
		errors.Is(err, store.ErrTitleNotFound),
		errors.Is(err, store.ErrPlaylistNotFound),
		errors.Is(err, store.ErrFavoriteNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUserExists),
		errors.Is(err, store.ErrArtistExists),
		errors.Is(err, store.ErrAlbumExists),
		errors.Is(err, store.ErrFavoriteExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), errorResponse{Error: err.Error()})
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
