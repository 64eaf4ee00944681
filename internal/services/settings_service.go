// Package services contains the business logic between handlers and repositories
package services

import (
	"context"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// SettingsRepository is the interface that wraps methods for settings data access
type SettingsRepository interface {
	// Get retrieves a setting by its key.
	//
	// Returns repositories.ErrSettingNotFound when the key does not exist.
	Get(ctx context.Context, key string) (*models.Setting, error)
	// GetAll retrieves all settings, filtered by category when category is non-empty.
	GetAll(ctx context.Context, category string) ([]models.Setting, error)
	// Upsert creates or replaces a setting atomically and returns the stored row.
	//
	// settingType and category are only applied when non-empty.
	Upsert(ctx context.Context, key, value, settingType, category string) (*models.Setting, error)
}

// settingsService implements settings business logic
type settingsService struct {
	repo SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo SettingsRepository) *settingsService {
	return &settingsService{
		repo: repo,
	}
}

// Get retrieves a setting by key
func (s *settingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	return s.repo.Get(ctx, key)
}

// GetAll retrieves settings, optionally filtered by category
func (s *settingsService) GetAll(ctx context.Context, category string) ([]models.Setting, error) {
	return s.repo.GetAll(ctx, category)
}

// Upsert creates or replaces a setting. The value is stored verbatim: it is
// never validated or coerced against the declared type tag.
func (s *settingsService) Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.Setting, error) {
	if req.Key == "" {
		return nil, fmt.Errorf("key is required")
	}
	return s.repo.Upsert(ctx, req.Key, req.Value, req.Type, req.Category)
}

// BulkUpsert applies Upsert to each entry, best effort: a failing entry does
// not abort the rest. Keys of failed entries are reported back.
func (s *settingsService) BulkUpsert(ctx context.Context, reqs []models.UpsertSettingRequest) *models.BulkUpsertResponse {
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
