package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// statsRepository aggregates row counts for the admin dashboard
type statsRepository struct {
	db        *sql.DB
	bootstrap schemaBootstrap
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{
		db:        db,
		bootstrap: schemaBootstrap{db: db},
	}
}

// Counts returns per-entity row counts. The media count goes through the
// lazy bootstrap path since media_assets may not exist yet on a fresh install.
func (r *statsRepository) Counts(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM projects`, &stats.Projects},
		{`SELECT COUNT(*) FROM services`, &stats.Services},
		{`SELECT COUNT(*) FROM faqs`, &stats.FAQs},
		{`SELECT COUNT(*) FROM reports`, &stats.Reports},
		{`SELECT COUNT(*) FROM process_items`, &stats.ProcessItems},
		{`SELECT COUNT(*) FROM contacts`, &stats.Contacts},
		{`SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`, &stats.UnreadContacts},
	}

	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	err := r.bootstrap.run(ctx, func() error {
		return r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media_assets`).Scan(&stats.MediaAssets)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count media assets: %w", err)
	}

	return stats, nil
}
