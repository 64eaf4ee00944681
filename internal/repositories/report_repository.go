package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrReportNotFound is returned when a report id does not exist
var ErrReportNotFound = errors.New("report not found")

// reportRepository implements report data access
type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *reportRepository {
	return &reportRepository{
		db: db,
	}
}

// List retrieves all reports, newest report date first
func (r *reportRepository) List(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT id, title, description, file_url, report_date, is_active, created_at
		FROM reports
		ORDER BY report_date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.Title, &rep.Description, &rep.FileURL, &rep.ReportDate, &rep.IsActive, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// GetByID retrieves a report by its id
func (r *reportRepository) GetByID(ctx context.Context, id int) (*models.Report, error) {
	query := `
		SELECT id, title, description, file_url, report_date, is_active, created_at
		FROM reports
		WHERE id = ?
		LIMIT 1
	`

	rep := &models.Report{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rep.ID, &rep.Title, &rep.Description, &rep.FileURL, &rep.ReportDate, &rep.IsActive, &rep.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return rep, nil
}

// Create inserts a new report and fills in the assigned id
func (r *reportRepository) Create(ctx context.Context, rep *models.Report) error {
	query := `
		INSERT INTO reports (title, description, file_url, report_date, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, rep.Title, rep.Description, rep.FileURL, rep.ReportDate, rep.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted report id: %w", err)
	}
	rep.ID = int(id)

	return nil
}

// Update replaces a report's fields
func (r *reportRepository) Update(ctx context.Context, rep *models.Report) error {
	query := `
		UPDATE reports
		SET title = ?, description = ?, file_url = ?, report_date = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, rep.Title, rep.Description, rep.FileURL, rep.ReportDate, rep.IsActive, rep.ID)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, rep.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a report
func (r *reportRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	return nil
}
