package models

import "time"

// ContentSection represents a page-scoped block of rich content.
// The key is unique across all pages; the page assignment is fixed at
// creation and never changed by later upserts.
type ContentSection struct {
	ID           int       `json:"id" db:"id"`
	Key          string    `json:"key" db:"section_key"`
	Name         *string   `json:"name" db:"name"`
	Content      string    `json:"content" db:"content"`
	Page         string    `json:"page" db:"page"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultPage is assigned when an upsert creates a section without a page
const DefaultPage = "home"

// UpsertSectionRequest is the request body for creating or updating a content section
type UpsertSectionRequest struct {
	Key          string `json:"key"`
	Content      string `json:"content"`
	Page         string `json:"page,omitempty"`
	SectionName  string `json:"section_name,omitempty"`
	DisplayOrder *int   `json:"display_order,omitempty"`
}

// BulkUpsertSectionsRequest upserts many sections in one call
type BulkUpsertSectionsRequest struct {
	Sections []UpsertSectionRequest `json:"sections"`
}
