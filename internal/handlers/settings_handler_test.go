package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// mockSettingsService is a mock implementation of SettingsService
type mockSettingsService struct {
	setting   *models.Setting
	settings  []models.Setting
	bulkResp  *models.BulkUpsertResponse
	getErr    error
	upsertErr error
	bulkCalls int
}

func (m *mockSettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.setting, nil
}

func (m *mockSettingsService) GetAll(ctx context.Context, category string) ([]models.Setting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsService) Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.Setting, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	return &models.Setting{Key: req.Key, Value: req.Value}, nil
}

func (m *mockSettingsService) BulkUpsert(ctx context.Context, reqs []models.UpsertSettingRequest) *models.BulkUpsertResponse {
	m.bulkCalls++
	return m.bulkResp
}

func TestSettingsHandler_Get(t *testing.T) {
	t.Run("single setting by key", func(t *testing.T) {
		svc := &mockSettingsService{setting: &models.Setting{Key: "site_title", Value: "Atelier Web"}}
		h := NewSettingsHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settings?key=site_title", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var setting models.Setting
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&setting))
		assert.Equal(t, "Atelier Web", setting.Value)
	})

	t.Run("unknown key returns 404", func(t *testing.T) {
		svc := &mockSettingsService{getErr: repositories.ErrSettingNotFound}
		h := NewSettingsHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settings?key=missing", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no key lists settings", func(t *testing.T) {
		svc := &mockSettingsService{settings: []models.Setting{{Key: "a"}, {Key: "b"}}}
		h := NewSettingsHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var settings []models.Setting
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
		assert.Len(t, settings, 2)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &mockSettingsService{getErr: errors.New("boom")}
		h := NewSettingsHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSettingsHandler_Upsert(t *testing.T) {
	t.Run("flat body takes the single-upsert path", func(t *testing.T) {
		svc := &mockSettingsService{}
		h := NewSettingsHandler(svc, zap.NewNop())

		body := `{"key": "site_title", "value": "Atelier Web"}`
		req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Upsert(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, svc.bulkCalls)

		var setting models.Setting
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&setting))
		assert.Equal(t, "site_title", setting.Key)
	})

	t.Run("settings array takes the bulk path", func(t *testing.T) {
		svc := &mockSettingsService{bulkResp: &models.BulkUpsertResponse{Updated: 2}}
		h := NewSettingsHandler(svc, zap.NewNop())

		body := `{"settings": [{"key": "a", "value": "1"}, {"key": "b", "value": "2"}]}`
		req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Upsert(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.bulkCalls)

		var resp models.BulkUpsertResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Updated)
	})

	t.Run("missing key returns 400", func(t *testing.T) {
		svc := &mockSettingsService{upsertErr: errors.New("key is required")}
		h := NewSettingsHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"value": "x"}`))
		rec := httptest.NewRecorder()

		h.Upsert(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		h := NewSettingsHandler(&mockSettingsService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()

		h.Upsert(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
