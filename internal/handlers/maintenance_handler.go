package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/repositories"
)

// MaintenanceHandler handles internal operational endpoints. These routes
// are meant for deploy tooling and are guarded by the API key middleware.
type MaintenanceHandler struct {
	BaseHandler
	db *sql.DB
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(db *sql.DB, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		db:          db,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the internal maintenance routes
func (h *MaintenanceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/internal", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/schema", h.EnsureSchema)
	})
}

// Health handles GET /internal/health
// @Summary Health check
// @Description Verify database connectivity
// @Tags internal
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Security ApiKeyAuth
// @Router /internal/health [get]
func (h *MaintenanceHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.Logger.Error("health check failed", zap.Error(err))
		h.RespondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// EnsureSchema handles POST /internal/schema
// @Summary Ensure content tables
// @Description Create the settings, content and media tables if they do not exist yet. The same happens lazily on first use; this endpoint lets deploy tooling front-load it.
// @Tags internal
// @Produce json
// @Success 200 {object} map[string]string "Schema present"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /internal/schema [post]
func (h *MaintenanceHandler) EnsureSchema(w http.ResponseWriter, r *http.Request) {
	if err := repositories.EnsureContentSchema(r.Context(), h.db); err != nil {
		h.Logger.Error("failed to ensure content schema", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to ensure content schema")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
