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

// ProcessItemsService is the interface that wraps methods for process step operations
type ProcessItemsService interface {
	List(ctx context.Context) ([]models.ProcessItem, error)
	Get(ctx context.Context, id int) (*models.ProcessItem, error)
	Create(ctx context.Context, req *models.UpsertProcessItemRequest) (*models.ProcessItem, error)
	Update(ctx context.Context, id int, req *models.UpsertProcessItemRequest) (*models.ProcessItem, error)
	Delete(ctx context.Context, id int) error
}

// ProcessItemsHandler handles HTTP requests for process steps
type ProcessItemsHandler struct {
	BaseHandler
	service ProcessItemsService
}

// NewProcessItemsHandler creates a new process steps handler
func NewProcessItemsHandler(svc ProcessItemsService, logger *zap.Logger) *ProcessItemsHandler {
	return &ProcessItemsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only process step routes
func (h *ProcessItemsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/process-items", h.List)
}

// RegisterAdminRoutes registers the process step management routes
func (h *ProcessItemsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/process-items", h.Create)
	r.Put("/process-items/{id}", h.Update)
	r.Delete("/process-items/{id}", h.Delete)
}

// List handles GET /process-items
// @Summary List process steps
// @Tags process-items
// @Produce json
// @Success 200 {array} models.ProcessItem "Process steps"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /process-items [get]
func (h *ProcessItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list process items", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list process items")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// Create handles POST /process-items
// @Summary Create a process step
// @Tags process-items
// @Accept json
// @Produce json
// @Param request body models.UpsertProcessItemRequest true "Process step payload"
// @Success 201 {object} models.ProcessItem "Created process step"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Security BearerAuth
// @Router /process-items [post]
func (h *ProcessItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertProcessItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create process item", zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "title is required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /process-items/{id}
// @Summary Update a process step
// @Tags process-items
// @Accept json
// @Produce json
// @Param id path int true "Process step ID"
// @Param request body models.UpsertProcessItemRequest true "Process step payload"
// @Success 200 {object} models.ProcessItem "Updated process step"
// @Failure 404 {object} map[string]string "Process step not found"
// @Security BearerAuth
// @Router /process-items/{id} [put]
func (h *ProcessItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid process item ID")
		return
	}

	var req models.UpsertProcessItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update process item", zap.Int("id", id), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrProcessItemNotFound):
			status = http.StatusNotFound
		case err.Error() == "title is required":
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /process-items/{id}
// @Summary Delete a process step
// @Tags process-items
// @Produce json
// @Param id path int true "Process step ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Process step not found"
// @Security BearerAuth
// @Router /process-items/{id} [delete]
func (h *ProcessItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid process item ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProcessItemNotFound) {
			h.RespondError(w, http.StatusNotFound, "process item not found")
			return
		}
		h.Logger.Error("failed to delete process item", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete process item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
