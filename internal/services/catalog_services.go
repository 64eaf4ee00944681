package services

import (
	"context"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ServiceRepository is the interface that wraps methods for service offering data access
type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id int) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id int) error
}

// FAQRepository is the interface that wraps methods for FAQ data access
type FAQRepository interface {
	List(ctx context.Context) ([]models.FAQ, error)
	GetByID(ctx context.Context, id int) (*models.FAQ, error)
	Create(ctx context.Context, f *models.FAQ) error
	Update(ctx context.Context, f *models.FAQ) error
	Delete(ctx context.Context, id int) error
}

// ReportRepository is the interface that wraps methods for report data access
type ReportRepository interface {
	List(ctx context.Context) ([]models.Report, error)
	GetByID(ctx context.Context, id int) (*models.Report, error)
	Create(ctx context.Context, r *models.Report) error
	Update(ctx context.Context, r *models.Report) error
	Delete(ctx context.Context, id int) error
}

// ProcessItemRepository is the interface that wraps methods for process step data access
type ProcessItemRepository interface {
	List(ctx context.Context) ([]models.ProcessItem, error)
	GetByID(ctx context.Context, id int) (*models.ProcessItem, error)
	Create(ctx context.Context, item *models.ProcessItem) error
	Update(ctx context.Context, item *models.ProcessItem) error
	Delete(ctx context.Context, id int) error
}

// serviceCatalogService implements service offering business logic
type serviceCatalogService struct {
	repo ServiceRepository
}

// NewServiceCatalogService creates a new service offering service
func NewServiceCatalogService(repo ServiceRepository) *serviceCatalogService {
	return &serviceCatalogService{repo: repo}
}

func (s *serviceCatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.repo.List(ctx)
}

func (s *serviceCatalogService) Get(ctx context.Context, id int) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *serviceCatalogService) Create(ctx context.Context, req *models.UpsertServiceRequest) (*models.Service, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	svc := serviceFromRequest(req)
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *serviceCatalogService) Update(ctx context.Context, id int, req *models.UpsertServiceRequest) (*models.Service, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	svc := serviceFromRequest(req)
	svc.ID = id
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *serviceCatalogService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func serviceFromRequest(req *models.UpsertServiceRequest) *models.Service {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.Service{
		Title:        req.Title,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}
}

// faqService implements FAQ business logic
type faqService struct {
	repo FAQRepository
}

// NewFAQService creates a new FAQ service
func NewFAQService(repo FAQRepository) *faqService {
	return &faqService{repo: repo}
}

func (s *faqService) List(ctx context.Context) ([]models.FAQ, error) {
	return s.repo.List(ctx)
}

func (s *faqService) Get(ctx context.Context, id int) (*models.FAQ, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *faqService) Create(ctx context.Context, req *models.UpsertFAQRequest) (*models.FAQ, error) {
	if req.Question == "" || req.Answer == "" {
		return nil, fmt.Errorf("question and answer are required")
	}
	f := faqFromRequest(req)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *faqService) Update(ctx context.Context, id int, req *models.UpsertFAQRequest) (*models.FAQ, error) {
	if req.Question == "" || req.Answer == "" {
		return nil, fmt.Errorf("question and answer are required")
	}
	f := faqFromRequest(req)
	f.ID = id
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *faqService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func faqFromRequest(req *models.UpsertFAQRequest) *models.FAQ {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.FAQ{
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}
}

// reportService implements report business logic
type reportService struct {
	repo ReportRepository
}

// NewReportService creates a new report service
func NewReportService(repo ReportRepository) *reportService {
	return &reportService{repo: repo}
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	return s.repo.List(ctx)
}

func (s *reportService) Get(ctx context.Context, id int) (*models.Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reportService) Create(ctx context.Context, req *models.UpsertReportRequest) (*models.Report, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	r := reportFromRequest(req)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reportService) Update(ctx context.Context, id int, req *models.UpsertReportRequest) (*models.Report, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	r := reportFromRequest(req)
	r.ID = id
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *reportService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func reportFromRequest(req *models.UpsertReportRequest) *models.Report {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.Report{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		ReportDate:  req.ReportDate,
		IsActive:    isActive,
	}
}

// processItemService implements process step business logic
type processItemService struct {
	repo ProcessItemRepository
}

// NewProcessItemService creates a new process step service
func NewProcessItemService(repo ProcessItemRepository) *processItemService {
	return &processItemService{repo: repo}
}

func (s *processItemService) List(ctx context.Context) ([]models.ProcessItem, error) {
	return s.repo.List(ctx)
}

func (s *processItemService) Get(ctx context.Context, id int) (*models.ProcessItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *processItemService) Create(ctx context.Context, req *models.UpsertProcessItemRequest) (*models.ProcessItem, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	item := processItemFromRequest(req)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *processItemService) Update(ctx context.Context, id int, req *models.UpsertProcessItemRequest) (*models.ProcessItem, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	item := processItemFromRequest(req)
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *processItemService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func processItemFromRequest(req *models.UpsertProcessItemRequest) *models.ProcessItem {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.ProcessItem{
		Title:        req.Title,
		Description:  req.Description,
		StepNumber:   req.StepNumber,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}
}
