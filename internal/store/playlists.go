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

// ErrPlaylistNotFound signals a missing playlist record.
var ErrPlaylistNotFound = errors.New("playlist not found")

// CreatePlaylist persists a new playlist and its title set.
func (s *Store) CreatePlaylist(ctx context.Context, params models.PlaylistParams) (models.Playlist, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return models.Playlist{}, fmt.Errorf("playlist name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var playlist models.Playlist
	err = tx.QueryRowContext(ctx, `
		INSERT INTO playlists (name, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, user_id, created_at, updated_at
	`, name, params.UserID).Scan(&playlist.ID, &playlist.Name, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}

	if err := replacePlaylistTitles(ctx, tx, playlist.ID, params.TitleIDs); err != nil {
		return models.Playlist{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Playlist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.PlaylistByID(ctx, playlist.ID)
}

// PlaylistByID returns a single playlist with its titles.
func (s *Store) PlaylistByID(ctx context.Context, id int64) (models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, user_id, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`, id).Scan(&playlist.ID, &playlist.Name, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playlist{}, ErrPlaylistNotFound
		}
		return models.Playlist{}, fmt.Errorf("select playlist: %w", err)
	}

	titles, err := s.playlistTitles(ctx, playlist.ID)
	if err != nil {
		return models.Playlist{}, err
	}
	playlist.Titles = titles

	return playlist, nil
}

// ListPlaylists returns all playlists with their titles, newest first.
func (s *Store) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, user_id, created_at, updated_at
		FROM playlists
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	for i := range playlists {
		titles, err := s.playlistTitles(ctx, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Titles = titles
	}

	return playlists, nil
}

// PlaylistsByUser returns a user's playlists, newest first.
func (s *Store) PlaylistsByUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, user_id, created_at, updated_at
		FROM playlists
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.UserID, &playlist.CreatedAt, &playlist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	for i := range playlists {
		titles, err := s.playlistTitles(ctx, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Titles = titles
	}

	return playlists, nil
}

// UpdatePlaylist modifies a playlist's name and, when TitleIDs is non-nil,
// replaces its title set.
func (s *Store) UpdatePlaylist(ctx context.Context, id int64, params models.PlaylistParams) (models.Playlist, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var playlistID int64
	err = tx.QueryRowContext(ctx, `
		UPDATE playlists
		SET name = COALESCE(NULLIF($2, ''), name),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, id, strings.TrimSpace(params.Name)).Scan(&playlistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playlist{}, ErrPlaylistNotFound
		}
		return models.Playlist{}, fmt.Errorf("update playlist: %w", err)
	}

	if params.TitleIDs != nil {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM playlist_titles
			WHERE playlist_id = $1
		`, playlistID); err != nil {
			return models.Playlist{}, fmt.Errorf("clear playlist titles: %w", err)
		}
		if err := replacePlaylistTitles(ctx, tx, playlistID, params.TitleIDs); err != nil {
			return models.Playlist{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Playlist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.PlaylistByID(ctx, playlistID)
}

// DeletePlaylist removes a playlist by id.
func (s *Store) DeletePlaylist(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

func replacePlaylistTitles(ctx context.Context, tx *sql.Tx, playlistID int64, titleIDs []int64) error {
	if len(titleIDs) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO playlist_titles (playlist_id, title_id)
		SELECT $1, id FROM titles WHERE id = ANY($2)
		ON CONFLICT DO NOTHING
	`, playlistID, pq.Array(titleIDs)); err != nil {
		return fmt.Errorf("insert playlist titles: %w", err)
	}
	return nil
}

func (s *Store) playlistTitles(ctx context.Context, playlistID int64) ([]models.Title, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.duration, t.album_id, t.artist_id, t.created_at, t.updated_at
		FROM titles t
		JOIN playlist_titles pt ON pt.title_id = t.id
		WHERE pt.playlist_id = $1
		ORDER BY t.id ASC
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select playlist titles: %w", err)
	}
	defer rows.Close()

	titles, err := scanTitleRows(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist titles: %w", err)
	}
	return titles, nil
}
