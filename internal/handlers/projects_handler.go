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

// ProjectsService is the interface that wraps methods for project operations
type ProjectsService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, req *models.UpsertProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int, req *models.UpsertProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int) error
}

// ProjectsHandler handles HTTP requests for portfolio projects
type ProjectsHandler struct {
	BaseHandler
	service ProjectsService
}

// NewProjectsHandler creates a new projects handler
func NewProjectsHandler(svc ProjectsService, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only project routes
func (h *ProjectsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/projects", h.List)
	r.Get("/projects/{id}", h.Get)
}

// RegisterAdminRoutes registers the project management routes
func (h *ProjectsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/projects", h.Create)
	r.Put("/projects/{id}", h.Update)
	r.Delete("/projects/{id}", h.Delete)
}

// List handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "Projects"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list projects", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// Get handles GET /projects/{id}
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project"
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			h.RespondError(w, http.StatusNotFound, "project not found")
			return
		}
		h.Logger.Error("failed to get project", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get project")
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Create handles POST /projects
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.UpsertProjectRequest true "Project payload"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create project", zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "title is required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, project)
}

// Update handles PUT /projects/{id}
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body models.UpsertProjectRequest true "Project payload"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var req models.UpsertProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update project", zap.Int("id", id), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrProjectNotFound):
			status = http.StatusNotFound
		case err.Error() == "title is required":
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /projects/{id}
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			h.RespondError(w, http.StatusNotFound, "project not found")
			return
		}
		h.Logger.Error("failed to delete project", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
