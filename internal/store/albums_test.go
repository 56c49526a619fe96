package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var (
	albumColumns = []string{
		"id", "name", "image", "publication_date", "created_at", "updated_at",
		"id", "name", "image", "created_at", "updated_at",
	}
	titleColumns = []string{"id", "name", "duration", "album_id", "artist_id", "created_at", "updated_at"}
)

func TestAlbumByIDSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	now := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	published := time.Date(1998, time.April, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT al.id, al.name, al.image, al.publication_date, al.created_at, al.updated_at,
		       ar.id, ar.name, ar.image, ar.created_at, ar.updated_at
		FROM albums al
		JOIN artists ar ON ar.id = al.artist_id
		WHERE al.id = $1
	`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(albumColumns).
			AddRow(int64(3), "Mezzanine", "https://example.test/mezzanine.jpg", published, now, now,
				int64(9), "Massive Attack", "", now, now))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, duration, album_id, artist_id, created_at, updated_at
		FROM titles
		WHERE album_id = $1
		ORDER BY id ASC
	`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(titleColumns).
			AddRow(int64(31), "Angel", 379, int64(3), int64(9), now, now).
			AddRow(int64(32), "Teardrop", 330, int64(3), int64(9), now, now))

	album, err := s.AlbumByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("AlbumByID error: %v", err)
	}

	if album.Name != "Mezzanine" || album.Author.Name != "Massive Attack" {
		t.Fatalf("unexpected album: %+v", album)
	}
	if len(album.Titles) != 2 || album.Titles[1].Name != "Teardrop" {
		t.Fatalf("unexpected titles: %+v", album.Titles)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAlbumByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("SELECT al.id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.AlbumByID(context.Background(), 404)
	if !errors.Is(err, ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound, got %v", err)
	}
}

func TestDeleteAlbumNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM albums WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteAlbum(context.Background(), 404); !errors.Is(err, ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound, got %v", err)
	}
}
