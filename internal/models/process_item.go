package models

import "time"

// ProcessItem represents one step of the "how we work" process section
type ProcessItem struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	StepNumber   int       `json:"step_number" db:"step_number"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UpsertProcessItemRequest is the request body for creating or updating a process step
type UpsertProcessItemRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	StepNumber   int    `json:"step_number"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"`
}
