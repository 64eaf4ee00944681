package services

import (
	"context"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ContentSectionRepository is the interface that wraps methods for content section data access
type ContentSectionRepository interface {
	// Get retrieves a content section by its key.
	//
	// Returns repositories.ErrSectionNotFound when the key does not exist.
	Get(ctx context.Context, key string) (*models.ContentSection, error)
	// List retrieves content sections, filtered by page when page is non-empty.
	List(ctx context.Context, page string) ([]models.ContentSection, error)
	// Upsert creates or updates a section. The page is only used on creation;
	// name is only applied when non-empty; displayOrder of -1 means "keep".
	Upsert(ctx context.Context, key, content, page, name string, displayOrder int) (*models.ContentSection, error)
	// Clear empties a section's content, keeping the row.
	Clear(ctx context.Context, key string) error
	// Remove physically deletes a section row.
	Remove(ctx context.Context, key string) error
}

// contentService implements content section business logic
type contentService struct {
	repo ContentSectionRepository
}

// NewContentService creates a new content service
func NewContentService(repo ContentSectionRepository) *contentService {
	return &contentService{
		repo: repo,
	}
}

// Get retrieves a content section by key
func (s *contentService) Get(ctx context.Context, key string) (*models.ContentSection, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	return s.repo.Get(ctx, key)
}

// List retrieves content sections, optionally filtered by page
func (s *contentService) List(ctx context.Context, page string) ([]models.ContentSection, error) {
	return s.repo.List(ctx, page)
}

// Upsert creates or updates a content section. A brand-new key without a page
// lands on the default page; the page of an existing key is never changed.
func (s *contentService) Upsert(ctx context.Context, req *models.UpsertSectionRequest) (*models.ContentSection, error) {
	if req.Key == "" {
		return nil, fmt.Errorf("key is required")
	}

	page := req.Page
	if page == "" {
		page = models.DefaultPage
	}

	displayOrder := -1
	if req.DisplayOrder != nil {
		if *req.DisplayOrder < 0 {
			return nil, fmt.Errorf("display_order must not be negative")
		}
		displayOrder = *req.DisplayOrder
	}

	return s.repo.Upsert(ctx, req.Key, req.Content, page, req.SectionName, displayOrder)
}

// BulkUpsert applies Upsert to each entry, best effort: a failing entry does
// not abort the rest. Keys of failed entries are reported back.
func (s *contentService) BulkUpsert(ctx context.Context, reqs []models.UpsertSectionRequest) *models.BulkUpsertResponse {
	resp := &models.BulkUpsertResponse{}
	for i := range reqs {
		if _, err := s.Upsert(ctx, &reqs[i]); err != nil {
			resp.Failed = append(resp.Failed, reqs[i].Key)
			continue
		}
		resp.Updated++
	}
	return resp
}

// Clear empties a section's content without removing the row
func (s *contentService) Clear(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	return s.repo.Clear(ctx, key)
}

// Remove physically deletes a section row
func (s *contentService) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	return s.repo.Remove(ctx, key)
}
