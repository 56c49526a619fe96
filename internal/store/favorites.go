package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kredoa/dizifyMusic-API/internal/models"
)

var (
	// ErrFavoriteNotFound signals a missing favorite record.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrFavoriteExists signals the user already favorited this target.
	ErrFavoriteExists = errors.New("favorite already exists")
)

// SaveFavorite inserts a favorite and returns it with the generated id. The
// unique (user, target) constraint surfaces as ErrFavoriteExists.
func (s *Store) SaveFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	albumID, artistID, titleID := targetColumns(favorite.Target)

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO favorites (user_id, album_id, artist_id, title_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, album_id, artist_id, title_id, created_at, updated_at
	`, favorite.UserID, albumID, artistID, titleID, favorite.CreatedAt, favorite.UpdatedAt)

	saved, err := scanFavorite(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Favorite{}, ErrFavoriteExists
		}
		return models.Favorite{}, fmt.Errorf("insert favorite: %w", err)
	}
	return saved, nil
}

// FavoriteByID returns a single favorite by identifier.
func (s *Store) FavoriteByID(ctx context.Context, id int64) (models.Favorite, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, album_id, artist_id, title_id, created_at, updated_at
		FROM favorites
		WHERE id = $1
	`, id)

	favorite, err := scanFavorite(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, ErrFavoriteNotFound
		}
		return models.Favorite{}, fmt.Errorf("select favorite: %w", err)
	}
	return favorite, nil
}

// FavoriteByUserAndAlbum returns the user's favorite for an album, or nil
// when none exists. Absence is a normal outcome, not an error.
func (s *Store) FavoriteByUserAndAlbum(ctx context.Context, userID, albumID int64) (*models.Favorite, error) {
	return s.favoriteByUserAndTarget(ctx, userID, "album_id", albumID)
}

// FavoriteByUserAndArtist returns the user's favorite for an artist, or nil
// when none exists.
func (s *Store) FavoriteByUserAndArtist(ctx context.Context, userID, artistID int64) (*models.Favorite, error) {
	return s.favoriteByUserAndTarget(ctx, userID, "artist_id", artistID)
}

// FavoriteByUserAndTitle returns the user's favorite for a title, or nil
// when none exists.
func (s *Store) FavoriteByUserAndTitle(ctx context.Context, userID, titleID int64) (*models.Favorite, error) {
	return s.favoriteByUserAndTarget(ctx, userID, "title_id", titleID)
}

// FavoritesByUser returns all of a user's favorites, newest first.
func (s *Store) FavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, album_id, artist_id, title_id, created_at, updated_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}

// DeleteFavorite removes a favorite by id.
func (s *Store) DeleteFavorite(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *Store) favoriteByUserAndTarget(ctx context.Context, userID int64, column string, targetID int64) (*models.Favorite, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, album_id, artist_id, title_id, created_at, updated_at
		FROM favorites
		WHERE user_id = $1 AND `+column+` = $2
	`, userID, targetID)

	favorite, err := scanFavorite(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select favorite by %s: %w", column, err)
	}
	return &favorite, nil
}

func targetColumns(target models.FavoriteTarget) (albumID, artistID, titleID sql.NullInt64) {
	switch target.Kind {
	case models.TargetAlbum:
		albumID = sql.NullInt64{Int64: target.ID, Valid: true}
	case models.TargetArtist:
		artistID = sql.NullInt64{Int64: target.ID, Valid: true}
	case models.TargetTitle:
		titleID = sql.NullInt64{Int64: target.ID, Valid: true}
	}
	return albumID, artistID, titleID
}

func scanFavorite(row rowScanner) (models.Favorite, error) {
	var (
		favorite models.Favorite
		albumID  sql.NullInt64
		artistID sql.NullInt64
		titleID  sql.NullInt64
	)
	if err := row.Scan(&favorite.ID, &favorite.UserID, &albumID, &artistID, &titleID, &favorite.CreatedAt, &favorite.UpdatedAt); err != nil {
		return models.Favorite{}, err
	}

	switch {
	case albumID.Valid:
		favorite.Target = models.FavoriteTarget{Kind: models.TargetAlbum, ID: albumID.Int64}
	case artistID.Valid:
		favorite.Target = models.FavoriteTarget{Kind: models.TargetArtist, ID: artistID.Int64}
	case titleID.Valid:
		favorite.Target = models.FavoriteTarget{Kind: models.TargetTitle, ID: titleID.Int64}
	}

	return favorite, nil
}
