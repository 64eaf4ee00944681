package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrServiceNotFound is returned when a service id does not exist
var ErrServiceNotFound = errors.New("service not found")

// serviceRepository implements service offering data access
type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *sql.DB) *serviceRepository {
	return &serviceRepository{
		db: db,
	}
}

// List retrieves all services ordered by display_order
func (r *serviceRepository) List(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, title, description, icon, display_order, is_active, created_at
		FROM services
		ORDER BY display_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.DisplayOrder, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

// GetByID retrieves a service by its id
func (r *serviceRepository) GetByID(ctx context.Context, id int) (*models.Service, error) {
	query := `
		SELECT id, title, description, icon, display_order, is_active, created_at
		FROM services
		WHERE id = ?
		LIMIT 1
	`

	s := &models.Service{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.Icon, &s.DisplayOrder, &s.IsActive, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return s, nil
}

// Create inserts a new service and fills in the assigned id
func (r *serviceRepository) Create(ctx context.Context, s *models.Service) error {
	query := `
		INSERT INTO services (title, description, icon, display_order, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, s.Title, s.Description, s.Icon, s.DisplayOrder, s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted service id: %w", err)
	}
	s.ID = int(id)

	return nil
}

// Update replaces a service's fields
func (r *serviceRepository) Update(ctx context.Context, s *models.Service) error {
	query := `
		UPDATE services
		SET title = ?, description = ?, icon = ?, display_order = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, s.Title, s.Description, s.Icon, s.DisplayOrder, s.IsActive, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a service
func (r *serviceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
