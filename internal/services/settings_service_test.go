package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierweb/sitecms/internal/models"
)

// mockSettingsRepository is a mock implementation of SettingsRepository
type mockSettingsRepository struct {
	setting    *models.Setting
	settings   []models.Setting
	err        error
	upsertErr  error
	failOnKeys map[string]bool
	upserts    []string
}

func (m *mockSettingsRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.setting, nil
}

func (m *mockSettingsRepository) GetAll(ctx context.Context, category string) ([]models.Setting, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, key, value, settingType, category string) (*models.Setting, error) {
	if m.failOnKeys[key] {
		return nil, errors.New("upsert failed")
	}
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	m.upserts = append(m.upserts, key)
	return &models.Setting{Key: key, Value: value, Type: settingType, Category: category}, nil
}

func TestSettingsService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockSettingsRepository{setting: &models.Setting{Key: "site_title", Value: "Atelier Web"}}
		svc := NewSettingsService(repo)

		setting, err := svc.Get(context.Background(), "site_title")

		require.NoError(t, err)
		assert.Equal(t, "site_title", setting.Key)
	})

	t.Run("empty key rejected before hitting the repository", func(t *testing.T) {
		svc := NewSettingsService(&mockSettingsRepository{})

		setting, err := svc.Get(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, setting)
	})
}

func TestSettingsService_GetAll(t *testing.T) {
	repo := &mockSettingsRepository{settings: []models.Setting{{Key: "a"}, {Key: "b"}}}
	svc := NewSettingsService(repo)

	settings, err := svc.GetAll(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, settings, 2)
}

func TestSettingsService_Upsert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockSettingsRepository{}
		svc := NewSettingsService(repo)

		setting, err := svc.Upsert(context.Background(), &models.UpsertSettingRequest{Key: "site_title", Value: "Atelier Web"})

		require.NoError(t, err)
		assert.Equal(t, "Atelier Web", setting.Value)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		svc := NewSettingsService(&mockSettingsRepository{})

		setting, err := svc.Upsert(context.Background(), &models.UpsertSettingRequest{Value: "x"})

		assert.Error(t, err)
		assert.Nil(t, setting)
	})
}

func TestSettingsService_BulkUpsert(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		repo := &mockSettingsRepository{}
		svc := NewSettingsService(repo)

		resp := svc.BulkUpsert(context.Background(), []models.UpsertSettingRequest{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
		})

		assert.Equal(t, 2, resp.Updated)
		assert.Empty(t, resp.Failed)
		assert.Equal(t, []string{"a", "b"}, repo.upserts)
	})

	t.Run("failures do not abort the rest", func(t *testing.T) {
		repo := &mockSettingsRepository{failOnKeys: map[string]bool{"b": true}}
		svc := NewSettingsService(repo)

		resp := svc.BulkUpsert(context.Background(), []models.UpsertSettingRequest{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
			{Key: "", Value: "3"},
			{Key: "d", Value: "4"},
		})

		assert.Equal(t, 2, resp.Updated)
		assert.Equal(t, []string{"b", ""}, resp.Failed)
		assert.Equal(t, []string{"a", "d"}, repo.upserts)
	})
}
