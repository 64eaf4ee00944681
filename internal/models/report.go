package models

import "time"

// Report represents a downloadable report or publication
type Report struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	FileURL     string    `json:"file_url" db:"file_url"`
	ReportDate  string    `json:"report_date" db:"report_date"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// UpsertReportRequest is the request body for creating or updating a report
type UpsertReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	ReportDate  string `json:"report_date"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
