package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrMediaAssetNotFound is returned when a media asset id does not exist
var ErrMediaAssetNotFound = errors.New("media asset not found")

// mediaRepository implements the media asset catalog
type mediaRepository struct {
	db        *sql.DB
	bootstrap schemaBootstrap
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *sql.DB) *mediaRepository {
	return &mediaRepository{
		db:        db,
		bootstrap: schemaBootstrap{db: db},
	}
}

// Create inserts a new media asset row and fills in the assigned id
func (r *mediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	query := `
		INSERT INTO media_assets
			(filename, original_filename, file_path, file_type, file_size, mime_type, alt_text, category, uploaded_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := r.bootstrap.run(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query,
			asset.Filename,
			asset.OriginalFilename,
			asset.FilePath,
			asset.FileType,
			asset.FileSize,
			asset.MimeType,
			asset.AltText,
			asset.Category,
			asset.UploadedBy,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		asset.ID = int(id)
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to create media asset: %w", err)
	}

	return nil
}

// List retrieves media assets, optionally filtered by category, newest first
func (r *mediaRepository) List(ctx context.Context, category string) ([]models.MediaAsset, error) {
	query := `
		SELECT id, filename, original_filename, file_path, file_type, file_size, mime_type, alt_text, category, uploaded_by, created_at
		FROM media_assets
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var assets []models.MediaAsset
	err := r.bootstrap.run(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		assets = assets[:0]
		for rows.Next() {
			var a models.MediaAsset
			if err := rows.Scan(
				&a.ID,
				&a.Filename,
				&a.OriginalFilename,
				&a.FilePath,
				&a.FileType,
				&a.FileSize,
				&a.MimeType,
				&a.AltText,
				&a.Category,
				&a.UploadedBy,
				&a.CreatedAt,
			); err != nil {
				return err
			}
			assets = append(assets, a)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list media assets: %w", err)
	}

	return assets, nil
}

// Delete removes a media asset row. The file on disk is not touched: the
// catalog entry is a soft unlink, the bytes stay retrievable by path.
func (r *mediaRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM media_assets WHERE id = ?`

	var affected int64
	err := r.bootstrap.run(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to delete media asset: %w", err)
	}
	if affected == 0 {
		return ErrMediaAssetNotFound
	}

	return nil
}

// Count returns the number of cataloged media assets
func (r *mediaRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.bootstrap.run(ctx, func() error {
		return r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media_assets`).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count media assets: %w", err)
	}
	return count, nil
}
