package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrFAQNotFound is returned when a FAQ id does not exist
var ErrFAQNotFound = errors.New("faq not found")

// faqRepository implements FAQ data access
type faqRepository struct {
	db *sql.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *sql.DB) *faqRepository {
	return &faqRepository{
		db: db,
	}
}

// List retrieves all FAQ entries ordered by display_order
func (r *faqRepository) List(ctx context.Context) ([]models.FAQ, error) {
	query := `
		SELECT id, question, answer, display_order, is_active, created_at
		FROM faqs
		ORDER BY display_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.DisplayOrder, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, rows.Err()
}

// GetByID retrieves a FAQ entry by its id
func (r *faqRepository) GetByID(ctx context.Context, id int) (*models.FAQ, error) {
	query := `
		SELECT id, question, answer, display_order, is_active, created_at
		FROM faqs
		WHERE id = ?
		LIMIT 1
	`

	f := &models.FAQ{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.DisplayOrder, &f.IsActive, &f.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	return f, nil
}

// Create inserts a new FAQ entry and fills in the assigned id
func (r *faqRepository) Create(ctx context.Context, f *models.FAQ) error {
	query := `
		INSERT INTO faqs (question, answer, display_order, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, f.Question, f.Answer, f.DisplayOrder, f.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted faq id: %w", err)
	}
	f.ID = int(id)

	return nil
}

// Update replaces a FAQ entry's fields
func (r *faqRepository) Update(ctx context.Context, f *models.FAQ) error {
	query := `
		UPDATE faqs
		SET question = ?, answer = ?, display_order = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, f.Question, f.Answer, f.DisplayOrder, f.IsActive, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, f.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a FAQ entry
func (r *faqRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFAQNotFound
	}

	return nil
}
