package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrProcessItemNotFound is returned when a process item id does not exist
var ErrProcessItemNotFound = errors.New("process item not found")

// processItemRepository implements process step data access
type processItemRepository struct {
	db *sql.DB
}

// NewProcessItemRepository creates a new process item repository
func NewProcessItemRepository(db *sql.DB) *processItemRepository {
	return &processItemRepository{
		db: db,
	}
}

// List retrieves all process steps ordered by step number
func (r *processItemRepository) List(ctx context.Context) ([]models.ProcessItem, error) {
	query := `
		SELECT id, title, description, step_number, display_order, is_active, created_at
		FROM process_items
		ORDER BY step_number, display_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list process items: %w", err)
	}
	defer rows.Close()

	var items []models.ProcessItem
	for rows.Next() {
		var item models.ProcessItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.StepNumber, &item.DisplayOrder, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan process item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetByID retrieves a process step by its id
func (r *processItemRepository) GetByID(ctx context.Context, id int) (*models.ProcessItem, error) {
	query := `
		SELECT id, title, description, step_number, display_order, is_active, created_at
		FROM process_items
		WHERE id = ?
		LIMIT 1
	`

	item := &models.ProcessItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.StepNumber, &item.DisplayOrder, &item.IsActive, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProcessItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get process item: %w", err)
	}

	return item, nil
}

// Create inserts a new process step and fills in the assigned id
func (r *processItemRepository) Create(ctx context.Context, item *models.ProcessItem) error {
	query := `
		INSERT INTO process_items (title, description, step_number, display_order, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, item.Title, item.Description, item.StepNumber, item.DisplayOrder, item.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create process item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted process item id: %w", err)
	}
	item.ID = int(id)

	return nil
}

// Update replaces a process step's fields
func (r *processItemRepository) Update(ctx context.Context, item *models.ProcessItem) error {
	query := `
		UPDATE process_items
		SET title = ?, description = ?, step_number = ?, display_order = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, item.Title, item.Description, item.StepNumber, item.DisplayOrder, item.IsActive, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update process item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, item.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a process step
func (r *processItemRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM process_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete process item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProcessItemNotFound
	}

	return nil
}
