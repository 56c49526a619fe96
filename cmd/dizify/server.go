package main

import (
	"net/http"

	"github.com/Kredoa/dizifyMusic-API/internal/app/albums"
	"github.com/Kredoa/dizifyMusic-API/internal/app/artists"
	"github.com/Kredoa/dizifyMusic-API/internal/app/favorites"
	"github.com/Kredoa/dizifyMusic-API/internal/app/playlists"
	"github.com/Kredoa/dizifyMusic-API/internal/app/titles"
	"github.com/Kredoa/dizifyMusic-API/internal/app/users"
	"github.com/Kredoa/dizifyMusic-API/internal/auth"
	"github.com/Kredoa/dizifyMusic-API/internal/httpapi"
	"github.com/Kredoa/dizifyMusic-API/internal/middleware"
	"github.com/Kredoa/dizifyMusic-API/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	identity := auth.NewResolver(tokens, dataStore)

	userSvc := users.New(dataStore)
	artistSvc := artists.New(dataStore)
	albumSvc := albums.New(dataStore, dataStore)
	titleSvc := titles.New(dataStore, dataStore)
	playlistSvc := playlists.New(dataStore, dataStore)
	favoriteSvc := favorites.New(dataStore, dataStore, dataStore)
	decorator := favorites.NewDecorator(dataStore)

	server := httpapi.New(userSvc, artistSvc, albumSvc, titleSvc, playlistSvc, favoriteSvc, decorator, identity, tokens)

	handler := server.Routes()
	handler = middleware.CORS(cfg.AllowedOrigin)(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	return handler
}
