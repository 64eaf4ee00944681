package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// ContentService is the interface that wraps methods for page content operations
type ContentService interface {
	// Get retrieves a single section by its key.
	//
	// Returns repositories.ErrSectionNotFound when the key does not exist.
	Get(ctx context.Context, key string) (*models.ContentSection, error)
	// List retrieves sections ordered for display, optionally filtered by page.
	List(ctx context.Context, page string) ([]models.ContentSection, error)
	// Upsert creates or updates a single section and returns the stored row.
	Upsert(ctx context.Context, req *models.UpsertSectionRequest) (*models.ContentSection, error)
	// BulkUpsert applies each upsert independently and reports per-key outcomes.
	BulkUpsert(ctx context.Context, reqs []models.UpsertSectionRequest) *models.BulkUpsertResponse
	// Clear blanks a section's content but keeps the row.
	Clear(ctx context.Context, key string) error
	// Remove deletes the section row entirely.
	Remove(ctx context.Context, key string) error
}

// ContentHandler handles HTTP requests for page content sections
type ContentHandler struct {
	BaseHandler
	service ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(svc ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only content routes
func (h *ContentHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/content", h.Get)
}

// RegisterAdminRoutes registers the content write routes
func (h *ContentHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/content", h.Upsert)
	r.Put("/content", h.Upsert)
	r.Delete("/content/{key}", h.Delete)
}

// upsertSectionsBody accepts either a single section or a batch. A non-empty
// "sections" array takes the bulk path; otherwise the flat fields are used.
type upsertSectionsBody struct {
	models.UpsertSectionRequest
	Sections []models.UpsertSectionRequest `json:"sections"`
}

// Get handles GET /content
// @Summary Get content sections
// @Description Get a single section by key, or list sections optionally filtered by page
// @Tags content
// @Accept json
// @Produce json
// @Param key query string false "Section key"
// @Param page query string false "Page filter (ignored when key is set)"
// @Success 200 {array} models.ContentSection "Sections list (or a single section object when key is set)"
// @Failure 404 {object} map[string]string "Section not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /content [get]
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		section, err := h.service.Get(r.Context(), key)
		if err != nil {
			if errors.Is(err, repositories.ErrSectionNotFound) {
				h.RespondError(w, http.StatusNotFound, "content section not found")
				return
			}
			h.Logger.Error("failed to get content section", zap.String("key", key), zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to get content section")
			return
		}

		h.RespondJSON(w, http.StatusOK, section)
		return
	}

	sections, err := h.service.List(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		h.Logger.Error("failed to list content sections", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list content sections")
		return
	}

	h.RespondJSON(w, http.StatusOK, sections)
}

// Upsert handles POST /content and PUT /content
// @Summary Create or update content sections
// @Description Upsert a single section, or a batch when the body carries a "sections" array. The page assignment is fixed on first insert.
// @Tags content
// @Accept json
// @Produce json
// @Param request body models.UpsertSectionRequest true "Section payload (or {\"sections\": [...]} for bulk)"
// @Success 200 {object} models.ContentSection "Stored section (or models.BulkUpsertResponse for bulk)"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /content [put]
func (h *ContentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var body upsertSectionsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Error("failed to decode content body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(body.Sections) > 0 {
		h.RespondJSON(w, http.StatusOK, h.service.BulkUpsert(r.Context(), body.Sections))
		return
	}

	section, err := h.service.Upsert(r.Context(), &body.UpsertSectionRequest)
	if err != nil {
		h.Logger.Error("failed to upsert content section", zap.String("key", body.Key), zap.Error(err))
		status := http.StatusInternalServerError
		if strings.HasSuffix(err.Error(), "is required") || strings.Contains(err.Error(), "display_order") {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, section)
}

// Delete handles DELETE /content/{key}
// @Summary Clear or remove a content section
// @Description Blank the section's content, or drop the row entirely when permanent=true
// @Tags content
// @Accept json
// @Produce json
// @Param key path string true "Section key"
// @Param permanent query bool false "Remove the row instead of clearing content"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Section not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /content/{key} [delete]
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var err error
	if r.URL.Query().Get("permanent") == "true" {
		err = h.service.Remove(r.Context(), key)
	} else {
		err = h.service.Clear(r.Context(), key)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			h.RespondError(w, http.StatusNotFound, "content section not found")
			return
		}
		h.Logger.Error("failed to delete content section", zap.String("key", key), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete content section")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
