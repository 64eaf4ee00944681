package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/sitecms/internal/models"
)

func setupMediaRepository(t *testing.T) (*mediaRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMediaRepository(db)

	return repo, mock, func() { db.Close() }
}

func TestMediaRepository_Create(t *testing.T) {
	insertPattern := regexp.QuoteMeta("INSERT INTO media_assets (filename, original_filename, file_path, file_type, file_size, mime_type, alt_text, category, uploaded_by) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")

	t.Run("success fills in assigned id", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		mock.ExpectExec(insertPattern).
			WithArgs("a1b2_1700000000.png", "logo.png", "uploads/general/a1b2_1700000000.png", "png", int64(2048), "image/png", "Company logo", "general", 1).
			WillReturnResult(sqlmock.NewResult(7, 1))

		asset := &models.MediaAsset{
			Filename:         "a1b2_1700000000.png",
			OriginalFilename: "logo.png",
			FilePath:         "uploads/general/a1b2_1700000000.png",
			FileType:         "png",
			FileSize:         2048,
			MimeType:         "image/png",
			AltText:          "Company logo",
			Category:         "general",
			UploadedBy:       1,
		}
		err := repo.Create(context.Background(), asset)

		require.NoError(t, err)
		assert.Equal(t, 7, asset.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table triggers bootstrap and retry", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		mock.ExpectExec(insertPattern).
			WillReturnError(missingTableErr())
		expectContentSchema(mock)
		mock.ExpectExec(insertPattern).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), &models.MediaAsset{Filename: "f.png"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		mock.ExpectExec(insertPattern).
			WillReturnError(errors.New("data too long"))

		err := repo.Create(context.Background(), &models.MediaAsset{Filename: "f.png"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMediaRepository_List(t *testing.T) {
	columns := []string{"id", "filename", "original_filename", "file_path", "file_type", "file_size", "mime_type", "alt_text", "category", "uploaded_by", "created_at"}

	t.Run("all assets newest first", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow(2, "b_2.png", "b.png", "uploads/general/b_2.png", "png", 100, "image/png", "", "general", 1, time.Now()).
			AddRow(1, "a_1.png", "a.png", "uploads/general/a_1.png", "png", 100, "image/png", "", "general", 1, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("FROM media_assets ORDER BY created_at DESC, id DESC")).
			WillReturnRows(rows)

		assets, err := repo.List(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, assets, 2)
		assert.Equal(t, 2, assets[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by category", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow(3, "c_3.pdf", "c.pdf", "uploads/reports/c_3.pdf", "pdf", 100, "application/pdf", "", "reports", 1, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("FROM media_assets WHERE category = ? ORDER BY created_at DESC, id DESC")).
			WithArgs("reports").
			WillReturnRows(rows)

		assets, err := repo.List(context.Background(), "reports")

		require.NoError(t, err)
		assert.Len(t, assets, 1)
		assert.Equal(t, "reports", assets[0].Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMediaRepository_Delete(t *testing.T) {
	deletePattern := regexp.QuoteMeta("DELETE FROM media_assets WHERE id = ?")

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		mock.ExpectExec(deletePattern).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 7)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupMediaRepository(t)
		defer cleanup()

		mock.ExpectExec(deletePattern).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, ErrMediaAssetNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMediaRepository_Count(t *testing.T) {
	repo, mock, cleanup := setupMediaRepository(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM media_assets")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
