package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// SettingsService is the interface that wraps methods for site setting operations
type SettingsService interface {
	// Get retrieves a single setting by its key.
	//
	// Returns repositories.ErrSettingNotFound when the key does not exist.
	Get(ctx context.Context, key string) (*models.Setting, error)
	// GetAll retrieves all settings, optionally filtered by category.
	GetAll(ctx context.Context, category string) ([]models.Setting, error)
	// Upsert creates or updates a single setting and returns the stored row.
	Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.Setting, error)
	// BulkUpsert applies each upsert independently and reports per-key outcomes.
	BulkUpsert(ctx context.Context, reqs []models.UpsertSettingRequest) *models.BulkUpsertResponse
}

// SettingsHandler handles HTTP requests for site settings
type SettingsHandler struct {
	BaseHandler
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(svc SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only settings routes
func (h *SettingsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
}

// RegisterAdminRoutes registers the settings write routes
func (h *SettingsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/settings", h.Upsert)
	r.Put("/settings", h.Upsert)
}

// upsertSettingsBody accepts either a single setting or a batch. A non-empty
// "settings" array takes the bulk path; otherwise the flat fields are used.
type upsertSettingsBody struct {
	models.UpsertSettingRequest
	Settings []models.UpsertSettingRequest `json:"settings"`
}

// Get handles GET /settings
// @Summary Get settings
// @Description Get a single setting by key, or list settings optionally filtered by category
// @Tags settings
// @Accept json
// @Produce json
// @Param key query string false "Setting key"
// @Param category query string false "Category filter (ignored when key is set)"
// @Success 200 {array} models.Setting "Settings list (or a single setting object when key is set)"
// @Failure 404 {object} map[string]string "Setting not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		setting, err := h.service.Get(r.Context(), key)
		if err != nil {
			if errors.Is(err, repositories.ErrSettingNotFound) {
				h.RespondError(w, http.StatusNotFound, "setting not found")
				return
			}
			h.Logger.Error("failed to get setting", zap.String("key", key), zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to get setting")
			return
		}

		h.RespondJSON(w, http.StatusOK, setting)
		return
	}

	settings, err := h.service.GetAll(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.Logger.Error("failed to list settings", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list settings")
		return
	}

	h.RespondJSON(w, http.StatusOK, settings)
}

// Upsert handles POST /settings and PUT /settings
// @Summary Create or update settings
// @Description Upsert a single setting, or a batch when the body carries a "settings" array
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.UpsertSettingRequest true "Setting payload (or {\"settings\": [...]} for bulk)"
// @Success 200 {object} models.Setting "Stored setting (or models.BulkUpsertResponse for bulk)"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var body upsertSettingsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Error("failed to decode settings body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(body.Settings) > 0 {
		h.RespondJSON(w, http.StatusOK, h.service.BulkUpsert(r.Context(), body.Settings))
		return
	}

	setting, err := h.service.Upsert(r.Context(), &body.UpsertSettingRequest)
	if err != nil {
		h.Logger.Error("failed to upsert setting", zap.String("key", body.Key), zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "key is required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, setting)
}
