package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atelierweb/sitecms/internal/models"
)

// ContactRepository is the interface that wraps methods for contact submission data access
type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

// contactService implements contact form business logic
type contactService struct {
	repo ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository) *contactService {
	return &contactService{
		repo: repo,
	}
}

// Submit validates and stores a public contact-form submission
func (s *contactService) Submit(ctx context.Context, req *models.SubmitContactRequest) (*models.Contact, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if req.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	c := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List retrieves all contact submissions for the admin panel
func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}

// MarkRead flags a submission as read
func (s *contactService) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a submission
func (s *contactService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
