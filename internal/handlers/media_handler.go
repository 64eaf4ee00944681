package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/middleware"
	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
	"github.com/atelierweb/sitecms/internal/services"
)

// MediaService is the interface that wraps methods for media library operations
type MediaService interface {
	// Upload validates, stores and catalogs an uploaded file.
	Upload(ctx context.Context, src io.Reader, originalFilename, mimeType string, size int64, category, altText string, uploadedBy int) (*models.MediaAsset, error)
	// List retrieves catalog entries with URLs resolved for the caller's host.
	List(ctx context.Context, category string, rc services.RequestContext) ([]models.MediaAsset, error)
	// Delete removes a catalog entry. The file on disk is kept.
	Delete(ctx context.Context, id int) error
	// ResolveURL builds the public URL for an asset as seen from the caller's host.
	ResolveURL(rc services.RequestContext, asset *models.MediaAsset) string
}

// MediaHandler handles HTTP requests for the media library
type MediaHandler struct {
	BaseHandler
	service MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(svc MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterAdminRoutes registers the media library routes
func (h *MediaHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/media", h.List)
	r.Post("/media", h.Upload)
	r.Delete("/media/{id}", h.Delete)
}

// requestContext captures the scheme and host the client used, honoring a
// proxy's X-Forwarded-Proto so resolved URLs survive TLS termination.
func requestContext(r *http.Request) services.RequestContext {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return services.RequestContext{Scheme: scheme, Host: r.Host}
}

// List handles GET /media
// @Summary List media assets
// @Description List catalog entries, newest first, optionally filtered by category. URLs are resolved for the requesting host.
// @Tags media
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.MediaAsset "Media assets"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /media [get]
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.List(r.Context(), r.URL.Query().Get("category"), requestContext(r))
	if err != nil {
		h.Logger.Error("failed to list media assets", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list media assets")
		return
	}

	h.RespondJSON(w, http.StatusOK, assets)
}

// Upload handles POST /media
// @Summary Upload a media asset
// @Description Store an uploaded file and catalog it
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param category formData string false "Category (defaults to general)"
// @Param alt_text formData string false "Alt text"
// @Success 201 {object} models.MediaAsset "Cataloged asset"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 415 {object} map[string]string "Unsupported media type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /media [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (32MB max in memory)
	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Error("failed to get file from form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	uploadedBy, _ := middleware.GetUserID(r.Context())

	asset, err := h.service.Upload(
		r.Context(),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		r.FormValue("category"),
		r.FormValue("alt_text"),
		uploadedBy,
	)
	if err != nil {
		h.Logger.Error("failed to upload media asset", zap.String("filename", header.Filename), zap.Error(err))
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrUnsupportedMediaType):
			status = http.StatusUnsupportedMediaType
		case errors.Is(err, services.ErrFileTooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, services.ErrInvalidCategory):
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	asset.URL = h.service.ResolveURL(requestContext(r), asset)
	h.RespondJSON(w, http.StatusCreated, asset)
}

// Delete handles DELETE /media/{id}
// @Summary Delete a media asset
// @Description Remove the catalog entry; the file on disk is left in place
// @Tags media
// @Accept json
// @Produce json
// @Param id path int true "Asset ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid asset ID"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /media/{id} [delete]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.Logger.Error("failed to parse asset ID", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid asset ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrMediaAssetNotFound) {
			h.RespondError(w, http.StatusNotFound, "media asset not found")
			return
		}
		h.Logger.Error("failed to delete media asset", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete media asset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
