package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
)

// ContactsService is the interface that wraps methods for contact form operations
type ContactsService interface {
	// Submit validates and stores a public contact-form submission.
	Submit(ctx context.Context, req *models.SubmitContactRequest) (*models.Contact, error)
	// List retrieves all submissions for the admin panel.
	List(ctx context.Context) ([]models.Contact, error)
	// MarkRead flags a submission as read.
	MarkRead(ctx context.Context, id int) error
	// Delete removes a submission.
	Delete(ctx context.Context, id int) error
}

// ContactsHandler handles HTTP requests for contact-form submissions
type ContactsHandler struct {
	BaseHandler
	service ContactsService
}

// NewContactsHandler creates a new contacts handler
func NewContactsHandler(svc ContactsService, logger *zap.Logger) *ContactsHandler {
	return &ContactsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterPublicRoutes registers the public contact-form route
func (h *ContactsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

// RegisterAdminRoutes registers the submission management routes
func (h *ContactsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/contacts", h.List)
	r.Patch("/contacts/{id}/read", h.MarkRead)
	r.Delete("/contacts/{id}", h.Delete)
}

// Submit handles POST /contact
// @Summary Submit the contact form
// @Description Store a visitor's contact-form submission
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body models.SubmitContactRequest true "Contact form payload"
// @Success 201 {object} models.Contact "Stored submission"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact [post]
func (h *ContactsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to store contact submission", zap.Error(err))
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			status = http.StatusBadRequest
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, contact)
}

// List handles GET /contacts
// @Summary List contact submissions
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact "Submissions, newest first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list contacts", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	h.RespondJSON(w, http.StatusOK, contacts)
}

// MarkRead handles PATCH /contacts/{id}/read
// @Summary Mark a submission as read
// @Tags contacts
// @Produce json
// @Param id path int true "Submission ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Submission not found"
// @Security BearerAuth
// @Router /contacts/{id}/read [patch]
func (h *ContactsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			h.RespondError(w, http.StatusNotFound, "contact not found")
			return
		}
		h.Logger.Error("failed to mark contact read", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to mark contact read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /contacts/{id}
// @Summary Delete a contact submission
// @Tags contacts
// @Produce json
// @Param id path int true "Submission ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Submission not found"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			h.RespondError(w, http.StatusNotFound, "contact not found")
			return
		}
		h.Logger.Error("failed to delete contact", zap.Int("id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
