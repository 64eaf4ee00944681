package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// FAQsService is the interface that wraps methods for FAQ operations
type FAQsService interface {
	List(ctx context.Context) ([]models.FAQ, error)
	Get(ctx context.Context, id int) (*models.FAQ, error)
	Create(ctx context.Context, req *models.UpsertFAQRequest) (*models.FAQ, error)
	Update(ctx context.Context, id int, req *models.UpsertFAQRequest) (*models.FAQ, error)
	Delete(ctx context.Context, id int) error
}

// FAQsHandler handles HTTP requests for FAQ entries
type FAQsHandler struct {
	BaseHandler
	service FAQsService
}

// NewFAQsHandler creates a new FAQ handler
func NewFAQsHandler(svc FAQsService, logger *zap.Logger) *FAQsHandler {
	return &FAQsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only FAQ routes
func (h *FAQsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/faqs", h.List)
}

// RegisterAdminRoutes registers the FAQ management routes
func (h *FAQsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/faqs", h.Create)
	r.Put("/faqs/{id}", h.Update)
	r.Delete("/faqs/{id}", h.Delete)
}

// List handles GET /faqs
// @Summary List FAQ entries
// @Tags faqs
// @Produce json
// @Success 200 {array} models.FAQ "FAQ entries"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /faqs [get]
func (h *FAQsHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list faqs", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list faqs")
		return
	}

	h.RespondJSON(w, http.StatusOK, faqs)
}

// Create handles POST /faqs
// @Summary Create a FAQ entry
// @Tags faqs
// @Accept json
// @Produce json
// @Param request body models.UpsertFAQRequest true "FAQ payload"
// @Success 201 {object} models.FAQ "Created FAQ entry"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Security BearerAuth
// @Router /faqs [post]
func (h *FAQsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	faq, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create faq", zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "question and answer are required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, faq)
}

// Update handles PUT /faqs/{id}
// @Summary Update a FAQ entry
// @Tags faqs
// @Accept json
// @Produce json
// @Param id path int true "FAQ ID"
// @Param request body models.UpsertFAQRequest true "FAQ payload"
// @Success 200 {object} models.FAQ "Updated FAQ entry"
// @Failure 404 {object} map[string]string "FAQ not found"
// @Security BearerAuth
// @Router /faqs/{id} [put]
func (h *FAQsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid FAQ ID")
		return
	}

	var req models.UpsertFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	faq, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update faq", zap.Int("id", id), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrFAQNotFound):
			status = http.StatusNotFound
		case err.Error() == "question and answer are required":
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, faq)
}

// Delete handles DELETE /faqs/{id}
// @Summary Delete a FAQ entry
// @Tags faqs
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "FAQ not found"
// @Security BearerAuth
// @Router /faqs/{id} [delete]
func (h *FAQsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid FAQ ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrFAQNotFound) {
			h.RespondError(w, http.StatusNotFound, "faq not found")
			return
		}
		h.Logger.Error("failed to delete faq", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete faq")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
