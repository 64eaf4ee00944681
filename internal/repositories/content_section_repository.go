package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrSectionNotFound is returned when a content section key does not exist
var ErrSectionNotFound = errors.New("content section not found")

// contentSectionRepository implements the page-scoped content store
type contentSectionRepository struct {
	db        *sql.DB
	bootstrap schemaBootstrap
}

// NewContentSectionRepository creates a new content section repository
func NewContentSectionRepository(db *sql.DB) *contentSectionRepository {
	return &contentSectionRepository{
		db:        db,
		bootstrap: schemaBootstrap{db: db},
	}
}

// Get retrieves a content section by its key
func (r *contentSectionRepository) Get(ctx context.Context, key string) (*models.ContentSection, error) {
	query := `
		SELECT id, section_key, name, content, page, display_order, is_active, updated_at
		FROM content_sections
		WHERE section_key = ?
		LIMIT 1
	`

	section := &models.ContentSection{}
	err := r.bootstrap.run(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, key).Scan(
			&section.ID,
			&section.Key,
			&section.Name,
			&section.Content,
			&section.Page,
			&section.DisplayOrder,
			&section.IsActive,
			&section.UpdatedAt,
		)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content section: %w", err)
	}

	return section, nil
}

// List retrieves content sections, optionally filtered by page, ordered by
// display_order. The order column is caller-maintained, never recomputed here.
func (r *contentSectionRepository) List(ctx context.Context, page string) ([]models.ContentSection, error) {
	query := `
		SELECT id, section_key, name, content, page, display_order, is_active, updated_at
		FROM content_sections
	`
	args := []any{}
	if page != "" {
		query += ` WHERE page = ?`
		args = append(args, page)
	}
	query += ` ORDER BY display_order, section_key`

	var sections []models.ContentSection
	err := r.bootstrap.run(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		sections = sections[:0]
		for rows.Next() {
			var s models.ContentSection
			if err := rows.Scan(&s.ID, &s.Key, &s.Name, &s.Content, &s.Page, &s.DisplayOrder, &s.IsActive, &s.UpdatedAt); err != nil {
				return err
			}
			sections = append(sections, s)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list content sections: %w", err)
	}

	return sections, nil
}

// Upsert atomically creates or updates a content section. The page column is
// deliberately absent from the UPDATE clause: a section's page is fixed at
// creation and cannot be moved by a later upsert. Name and display order are
// only replaced when supplied.
// displayOrder of -1 means "not supplied".
func (r *contentSectionRepository) Upsert(ctx context.Context, key, content, page, name string, displayOrder int) (*models.ContentSection, error) {
	insertOrder := displayOrder
	if insertOrder < 0 {
		insertOrder = 0
	}

	query := `
		INSERT INTO content_sections (section_key, name, content, page, display_order)
		VALUES (?, NULLIF(?, ''), ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			content = VALUES(content),
			name = IF(? = '', name, ?),
			display_order = IF(? < 0, display_order, ?)
	`

	err := r.bootstrap.run(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			key, name, content, page, insertOrder,
			name, name,
			displayOrder, displayOrder,
		)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to upsert content section: %w", err)
	}

	return r.Get(ctx, key)
}

// Clear empties a section's content without removing the row. Rendering code
// treats empty content as "effectively deleted".
func (r *contentSectionRepository) Clear(ctx context.Context, key string) error {
	query := `UPDATE content_sections SET content = '' WHERE section_key = ?`

	var affected int64
	err := r.bootstrap.run(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, key)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to clear content section: %w", err)
	}
	if affected == 0 {
		// MySQL reports 0 affected rows for a no-change update as well, so
		// distinguish a missing row from an already-empty section
		if _, err := r.Get(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

// Remove physically deletes a section row. This is the explicit hard-delete
// capability; Clear remains the admin panel's default "delete".
func (r *contentSectionRepository) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM content_sections WHERE section_key = ?`

	var affected int64
	err := r.bootstrap.run(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, key)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to remove content section: %w", err)
	}
	if affected == 0 {
		return ErrSectionNotFound
	}

	return nil
}
