package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrProjectNotFound is returned when a project id does not exist
var ErrProjectNotFound = errors.New("project not found")

// projectRepository implements project data access
type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{
		db: db,
	}
}

// List retrieves all projects ordered by display_order
func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, description, image_url, project_url, category, display_order, is_active, created_at
		FROM projects
		ORDER BY display_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.Category, &p.DisplayOrder, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetByID retrieves a project by its id
func (r *projectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	query := `
		SELECT id, title, description, image_url, project_url, category, display_order, is_active, created_at
		FROM projects
		WHERE id = ?
		LIMIT 1
	`

	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.Category, &p.DisplayOrder, &p.IsActive, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// Create inserts a new project and fills in the assigned id
func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (title, description, image_url, project_url, category, display_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.ImageURL, p.ProjectURL, p.Category, p.DisplayOrder, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted project id: %w", err)
	}
	p.ID = int(id)

	return nil
}

// Update replaces a project's fields
func (r *projectRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET title = ?, description = ?, image_url = ?, project_url = ?, category = ?, display_order = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.ImageURL, p.ProjectURL, p.Category, p.DisplayOrder, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		// A no-change update also affects 0 rows; confirm existence
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a project
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
