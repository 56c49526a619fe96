package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

var (
	// ErrAlbumNotFound signals a missing album record.
	ErrAlbumNotFound = errors.New("album not found")
	// ErrAlbumExists signals the album name is already taken.
	ErrAlbumExists = errors.New("album name already taken")
)

// CreateAlbum inserts a new album and, when TitleIDs is set, attaches the
// referenced titles to it.
func (s *Store) CreateAlbum(ctx context.Context, params models.AlbumParams) (models.Album, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return models.Album{}, fmt.Errorf("album name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Album{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var album models.Album
	err = tx.QueryRowContext(ctx, `
		INSERT INTO albums (name, image, publication_date, artist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, image, publication_date, created_at, updated_at
	`, name, params.Image, params.PublicationDate, params.AuthorID).Scan(
		&album.ID, &album.Name, &album.Image, &album.PublicationDate, &album.CreatedAt, &album.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Album{}, ErrAlbumExists
		}
		return models.Album{}, fmt.Errorf("insert album: %w", err)
	}

	if len(params.TitleIDs) > 0 {
		if _, err := tx.ExecContext(ctx, `
			UPDATE titles
			SET album_id = $1, updated_at = NOW()
			WHERE id = ANY($2)
		`, album.ID, pq.Array(params.TitleIDs)); err != nil {
			return models.Album{}, fmt.Errorf("attach titles: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Album{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.AlbumByID(ctx, album.ID)
}

// AlbumByID returns a single album with its author and track list.
func (s *Store) AlbumByID(ctx context.Context, id int64) (models.Album, error) {
	var album models.Album
	err := s.db.QueryRowContext(ctx, `
		SELECT al.id, al.name, al.image, al.publication_date, al.created_at, al.updated_at,
		       ar.id, ar.name, ar.image, ar.created_at, ar.updated_at
		FROM albums al
		JOIN artists ar ON ar.id = al.artist_id
		WHERE al.id = $1
	`, id).Scan(
		&album.ID, &album.Name, &album.Image, &album.PublicationDate, &album.CreatedAt, &album.UpdatedAt,
		&album.Author.ID, &album.Author.Name, &album.Author.Image, &album.Author.CreatedAt, &album.Author.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}
		return models.Album{}, fmt.Errorf("select album: %w", err)
	}

	titles, err := s.TitlesByAlbum(ctx, album.ID)
	if err != nil {
		return models.Album{}, err
	}
	album.Titles = titles

	return album, nil
}

// ListAlbums returns all albums with their authors and track lists, newest
// publication first.
func (s *Store) ListAlbums(ctx context.Context) ([]models.Album, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT al.id, al.name, al.image, al.publication_date, al.created_at, al.updated_at,
		       ar.id, ar.name, ar.image, ar.created_at, ar.updated_at
		FROM albums al
		JOIN artists ar ON ar.id = al.artist_id
		ORDER BY al.publication_date DESC, al.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var album models.Album
		if err := rows.Scan(
			&album.ID, &album.Name, &album.Image, &album.PublicationDate, &album.CreatedAt, &album.UpdatedAt,
			&album.Author.ID, &album.Author.Name, &album.Author.Image, &album.Author.CreatedAt, &album.Author.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}

	for i := range albums {
		titles, err := s.TitlesByAlbum(ctx, albums[i].ID)
		if err != nil {
			return nil, err
		}
		albums[i].Titles = titles
	}

	return albums, nil
}

// UpdateAlbum modifies an album's name and image and, when TitleIDs is
// non-nil, replaces its track set.
func (s *Store) UpdateAlbum(ctx context.Context, id int64, params models.AlbumParams) (models.Album, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Album{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var albumID int64
	err = tx.QueryRowContext(ctx, `
		UPDATE albums
		SET name = COALESCE(NULLIF($2, ''), name),
		    image = COALESCE(NULLIF($3, ''), image),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, id, strings.TrimSpace(params.Name), params.Image).Scan(&albumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}
		if isUniqueViolation(err) {
			return models.Album{}, ErrAlbumExists
		}
		return models.Album{}, fmt.Errorf("update album: %w", err)
	}

	if params.TitleIDs != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE titles
			SET album_id = NULL, updated_at = NOW()
			WHERE album_id = $1
		`, albumID); err != nil {
			return models.Album{}, fmt.Errorf("detach titles: %w", err)
		}
		if len(params.TitleIDs) > 0 {
			if _, err := tx.ExecContext(ctx, `
				UPDATE titles
				SET album_id = $1, updated_at = NOW()
				WHERE id = ANY($2)
			`, albumID, pq.Array(params.TitleIDs)); err != nil {
				return models.Album{}, fmt.Errorf("attach titles: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Album{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.AlbumByID(ctx, albumID)
}

// DeleteAlbum removes an album by id.
func (s *Store) DeleteAlbum(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}
