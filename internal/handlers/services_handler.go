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

// ServicesService is the interface that wraps methods for service offering operations
type ServicesService interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id int) (*models.Service, error)
	Create(ctx context.Context, req *models.UpsertServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id int, req *models.UpsertServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id int) error
}

// ServicesHandler handles HTTP requests for service offerings
type ServicesHandler struct {
	BaseHandler
	service ServicesService
}

// NewServicesHandler creates a new services handler
func NewServicesHandler(svc ServicesService, logger *zap.Logger) *ServicesHandler {
	return &ServicesHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only service routes
func (h *ServicesHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/services", h.List)
	r.Get("/services/{id}", h.Get)
}

// RegisterAdminRoutes registers the service management routes
func (h *ServicesHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/services", h.Create)
	r.Put("/services/{id}", h.Update)
	r.Delete("/services/{id}", h.Delete)
}

// List handles GET /services
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} models.Service "Services"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services [get]
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list services")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// Get handles GET /services/{id}
// @Summary Get service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service "Service"
// @Failure 404 {object} map[string]string "Service not found"
// @Router /services/{id} [get]
func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			h.RespondError(w, http.StatusNotFound, "service not found")
			return
		}
		h.Logger.Error("failed to get service", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get service")
		return
	}

	h.RespondJSON(w, http.StatusOK, item)
}

// Create handles POST /services
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param request body models.UpsertServiceRequest true "Service payload"
// @Success 201 {object} models.Service "Created service"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Security BearerAuth
// @Router /services [post]
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "title is required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /services/{id}
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body models.UpsertServiceRequest true "Service payload"
// @Success 200 {object} models.Service "Updated service"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	var req models.UpsertServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update service", zap.Int("id", id), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrServiceNotFound):
			status = http.StatusNotFound
		case err.Error() == "title is required":
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /services/{id}
// @Summary Delete a service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			h.RespondError(w, http.StatusNotFound, "service not found")
			return
		}
		h.Logger.Error("failed to delete service", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
