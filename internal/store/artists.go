package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

var (
	// ErrArtistNotFound signals a missing artist record.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrArtistExists signals the artist name is already taken.
	ErrArtistExists = errors.New("artist name already taken")
)

// CreateArtist inserts a new artist.
func (s *Store) CreateArtist(ctx context.Context, params models.ArtistParams) (models.Artist, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return models.Artist{}, fmt.Errorf("artist name is required")
	}

	var artist models.Artist
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, image, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, image, created_at, updated_at
	`, name, params.Image).Scan(&artist.ID, &artist.Name, &artist.Image, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Artist{}, ErrArtistExists
		}
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	return artist, nil
}

// ArtistByID returns a single artist by identifier.
func (s *Store) ArtistByID(ctx context.Context, id int64) (models.Artist, error) {
	var artist models.Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, image, created_at, updated_at
		FROM artists
		WHERE id = $1
	`, id).Scan(&artist.ID, &artist.Name, &artist.Image, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Artist{}, ErrArtistNotFound
		}
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}
	return artist, nil
}

// ListArtists returns all artists ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image, created_at, updated_at
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var artist models.Artist
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Image, &artist.CreatedAt, &artist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// UpdateArtist modifies an artist's name and image. Empty fields are left
// unchanged.
func (s *Store) UpdateArtist(ctx context.Context, id int64, params models.ArtistParams) (models.Artist, error) {
	var artist models.Artist
	err := s.db.QueryRowContext(ctx, `
		UPDATE artists
		SET name = COALESCE(NULLIF($2, ''), name),
		    image = COALESCE(NULLIF($3, ''), image),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, image, created_at, updated_at
	`, id, strings.TrimSpace(params.Name), params.Image).Scan(&artist.ID, &artist.Name, &artist.Image, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Artist{}, ErrArtistNotFound
		}
		if isUniqueViolation(err) {
			return models.Artist{}, ErrArtistExists
		}
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}
	return artist, nil
}

// DeleteArtist removes an artist by id.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrArtistNotFound
	}
	return nil
}
