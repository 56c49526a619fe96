package models

import (
	"errors"
	"time"
)

// ErrInvalidFavoriteTarget signals that a favorite request named zero or
// several targets instead of exactly one.
var ErrInvalidFavoriteTarget = errors.New("exactly one of albumId, artistId or titleId must be set")

// TargetKind identifies which entity kind a favorite points at.
type TargetKind string

const (
	TargetAlbum  TargetKind = "album"
	TargetArtist TargetKind = "artist"
	TargetTitle  TargetKind = "title"
)

// FavoriteTarget references exactly one album, artist or title. Using a
// tagged pair instead of three nullable ids makes a favorite with two
// targets unrepresentable.
type FavoriteTarget struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

// Favorite is a user's marking of a single album, artist or title.
type Favorite struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Target    FavoriteTarget `json:"target"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FavoriteParams is the wire form of a favorite-creation request: three
// optional ids of which exactly one must be non-zero.
type FavoriteParams struct {
	UserID   int64 `json:"userId"`
	AlbumID  int64 `json:"albumId"`
	ArtistID int64 `json:"artistId"`
	TitleID  int64 `json:"titleId"`
}

// Target folds the three optional ids into a single tagged target. It
// returns ErrInvalidFavoriteTarget unless exactly one id is set.
func (p FavoriteParams) Target() (FavoriteTarget, error) {
	var target FavoriteTarget
	count := 0

	if p.AlbumID != 0 {
		target = FavoriteTarget{Kind: TargetAlbum, ID: p.AlbumID}
		count++
	}
	if p.ArtistID != 0 {
		target = FavoriteTarget{Kind: TargetArtist, ID: p.ArtistID}
		count++
	}
	if p.TitleID != 0 {
		target = FavoriteTarget{Kind: TargetTitle, ID: p.TitleID}
		count++
	}

	if count != 1 {
		return FavoriteTarget{}, ErrInvalidFavoriteTarget
	}
	return target, nil
}
