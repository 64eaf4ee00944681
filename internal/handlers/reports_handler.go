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

// ReportsService is the interface that wraps methods for report operations
type ReportsService interface {
	List(ctx context.Context) ([]models.Report, error)
	Get(ctx context.Context, id int) (*models.Report, error)
	Create(ctx context.Context, req *models.UpsertReportRequest) (*models.Report, error)
	Update(ctx context.Context, id int, req *models.UpsertReportRequest) (*models.Report, error)
	Delete(ctx context.Context, id int) error
}

// ReportsHandler handles HTTP requests for downloadable reports
type ReportsHandler struct {
	BaseHandler
	service ReportsService
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(svc ReportsService, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the read-only report routes
func (h *ReportsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/reports", h.List)
}

// RegisterAdminRoutes registers the report management routes
func (h *ReportsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/reports", h.Create)
	r.Put("/reports/{id}", h.Update)
	r.Delete("/reports/{id}", h.Delete)
}

// List handles GET /reports
// @Summary List reports
// @Tags reports
// @Produce json
// @Success 200 {array} models.Report "Reports"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list reports", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	h.RespondJSON(w, http.StatusOK, reports)
}

// Create handles POST /reports
// @Summary Create a report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body models.UpsertReportRequest true "Report payload"
// @Success 201 {object} models.Report "Created report"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create report", zap.Error(err))
		status := http.StatusInternalServerError
		if err.Error() == "title is required" {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, report)
}

// Update handles PUT /reports/{id}
// @Summary Update a report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body models.UpsertReportRequest true "Report payload"
// @Success 200 {object} models.Report "Updated report"
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [put]
func (h *ReportsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	var req models.UpsertReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update report", zap.Int("id", id), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrReportNotFound):
			status = http.StatusNotFound
		case err.Error() == "title is required":
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, report)
}

// Delete handles DELETE /reports/{id}
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			h.RespondError(w, http.StatusNotFound, "report not found")
			return
		}
		h.Logger.Error("failed to delete report", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
