package services

import (
	"context"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ProjectRepository is the interface that wraps methods for project data access
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int) error
}

// projectService implements project business logic
type projectService struct {
	repo ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo ProjectRepository) *projectService {
	return &projectService{
		repo: repo,
	}
}

// List retrieves all projects
func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

// Get retrieves a project by id
func (s *projectService) Get(ctx context.Context, id int) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and creates a project
func (s *projectService) Create(ctx context.Context, req *models.UpsertProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	p := projectFromRequest(req)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update validates and replaces a project's fields
func (s *projectService) Update(ctx context.Context, id int, req *models.UpsertProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	p := projectFromRequest(req)
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a project
func (s *projectService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// projectFromRequest maps a request body onto a project record. Unknown
// extra fields in the input were already dropped by JSON decoding.
func projectFromRequest(req *models.UpsertProjectRequest) *models.Project {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}
}
