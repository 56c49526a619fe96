package models

import "time"

// Artist is a music author referenced by albums and titles.
type Artist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Title is a single track belonging to an album.
type Title struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"` // seconds
	AlbumID   int64     `json:"albumId,omitempty"`
	ArtistID  int64     `json:"artistId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Album is a published record with its author and track list.
type Album struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	PublicationDate time.Time `json:"publicationDate"`
	Author          Artist    `json:"author"`
	Titles          []Title   `json:"titles"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Playlist is a user-curated, unordered set of titles.
type Playlist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"userId"`
	Titles    []Title   `json:"titles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArtistParams carries the writable artist fields.
type ArtistParams struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AlbumParams carries the writable album fields. TitleIDs, when present,
// replaces the album's track set.
type AlbumParams struct {
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	PublicationDate time.Time `json:"publicationDate"`
	AuthorID        int64     `json:"authorId"`
	TitleIDs        []int64   `json:"titleIds"`
}

// TitleParams carries the writable title fields.
type TitleParams struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	AlbumID  int64  `json:"albumId"`
	AuthorID int64  `json:"authorId"`
}

// PlaylistParams carries the writable playlist fields.
type PlaylistParams struct {
	Name     string  `json:"name"`
	UserID   int64   `json:"userId"`
	TitleIDs []int64 `json:"titleIds"`
}
