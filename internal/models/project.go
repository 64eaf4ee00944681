package models

import "time"

// Project represents a portfolio project shown on the public site
type Project struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	ProjectURL   string    `json:"project_url" db:"project_url"`
	Category     string    `json:"category" db:"category"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UpsertProjectRequest is the request body for creating or updating a project
type UpsertProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ProjectURL   string `json:"project_url"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"`
}
