package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
)

// DashboardService is the interface that wraps the admin dashboard aggregation
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// DashboardHandler handles HTTP requests for the admin dashboard
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterAdminRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.Stats)
}

// Stats handles GET /dashboard/stats
// @Summary Get dashboard stats
// @Description Get per-entity row counts for the admin dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats "Aggregated counts"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.Logger.Error("failed to aggregate dashboard stats", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to aggregate dashboard stats")
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
