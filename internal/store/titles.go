package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

// ErrTitleNotFound signals a missing title record.
var ErrTitleNotFound = errors.New("title not found")

// CreateTitle inserts a new title. A zero AlbumID leaves the title detached
// from any album.
func (s *Store) CreateTitle(ctx context.Context, params models.TitleParams) (models.Title, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" || params.Duration <= 0 {
		return models.Title{}, fmt.Errorf("title name and a positive duration are required")
	}

	var albumID sql.NullInt64
	if params.AlbumID != 0 {
		albumID = sql.NullInt64{Int64: params.AlbumID, Valid: true}
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO titles (name, duration, album_id, artist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, duration, album_id, artist_id, created_at, updated_at
	`, name, params.Duration, albumID, params.AuthorID)

	title, err := scanTitleRow(row)
	if err != nil {
		return models.Title{}, fmt.Errorf("insert title: %w", err)
	}
	return title, nil
}

// TitleByID returns a single title by identifier.
func (s *Store) TitleByID(ctx context.Context, id int64) (models.Title, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, duration, album_id, artist_id, created_at, updated_at
		FROM titles
		WHERE id = $1
	`, id)

	title, err := scanTitleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Title{}, ErrTitleNotFound
		}
		return models.Title{}, fmt.Errorf("select title: %w", err)
	}
	return title, nil
}

// ListTitles returns all titles ordered by name.
func (s *Store) ListTitles(ctx context.Context) ([]models.Title, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, duration, album_id, artist_id, created_at, updated_at
		FROM titles
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select titles: %w", err)
	}
	defer rows.Close()

	titles, err := scanTitleRows(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	return titles, nil
}

// TitlesByAlbum returns the titles attached to an album, ordered by id.
func (s *Store) TitlesByAlbum(ctx context.Context, albumID int64) ([]models.Title, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, duration, album_id, artist_id, created_at, updated_at
		FROM titles
		WHERE album_id = $1
		ORDER BY id ASC
	`, albumID)
	if err != nil {
		return nil, fmt.Errorf("select album titles: %w", err)
	}
	defer rows.Close()

	titles, err := scanTitleRows(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate album titles: %w", err)
	}
	return titles, nil
}

// UpdateTitle modifies a title's name and duration.
func (s *Store) UpdateTitle(ctx context.Context, id int64, params models.TitleParams) (models.Title, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE titles
		SET name = COALESCE(NULLIF($2, ''), name),
		    duration = CASE WHEN $3 > 0 THEN $3 ELSE duration END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, duration, album_id, artist_id, created_at, updated_at
	`, id, strings.TrimSpace(params.Name), params.Duration)

	title, err := scanTitleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Title{}, ErrTitleNotFound
		}
		return models.Title{}, fmt.Errorf("update title: %w", err)
	}
	return title, nil
}

// DeleteTitle removes a title by id.
func (s *Store) DeleteTitle(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTitleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTitleRow(row rowScanner) (models.Title, error) {
	var (
		title   models.Title
		albumID sql.NullInt64
	)
	if err := row.Scan(&title.ID, &title.Name, &title.Duration, &albumID, &title.ArtistID, &title.CreatedAt, &title.UpdatedAt); err != nil {
		return models.Title{}, err
	}
	title.AlbumID = albumID.Int64
	return title, nil
}

func scanTitleRows(rows *sql.Rows) ([]models.Title, error) {
	var titles []models.Title
	for rows.Next() {
		title, err := scanTitleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, nil
}
