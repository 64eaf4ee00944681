package services

import (
	"context"

	"github.com/atelierweb/sitecms/internal/models"
)

// StatsRepository is the interface that wraps dashboard count aggregation
type StatsRepository interface {
	// Counts returns per-entity row counts.
	Counts(ctx context.Context) (*models.DashboardStats, error)
}

// dashboardService implements admin dashboard aggregation
type dashboardService struct {
	repo StatsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo StatsRepository) *dashboardService {
	return &dashboardService{
		repo: repo,
	}
}

// Stats returns the aggregated dashboard counts
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.Counts(ctx)
}
