package models

import "time"

// Setting represents a single named configuration value stored in the database
type Setting struct {
	ID        int       `json:"id" db:"id"`
	Key       string    `json:"key" db:"setting_key"`
	Value     string    `json:"value" db:"setting_value"`
	Type      string    `json:"type" db:"setting_type"`
	Category  string    `json:"category" db:"category"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Setting type tags. Informational only: the value is stored and returned
// verbatim, never coerced or validated against the tag.
const (
	SettingTypeText     = "text"
	SettingTypeTextarea = "textarea"
	SettingTypeImage    = "image"
	SettingTypeURL      = "url"
)

// DefaultSettingCategory is applied when an upsert omits the category
const DefaultSettingCategory = "general"

// UpsertSettingRequest is the request body for creating or updating a setting
type UpsertSettingRequest struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
}

// BulkUpsertSettingsRequest upserts many settings in one call
type BulkUpsertSettingsRequest struct {
	Settings []UpsertSettingRequest `json:"settings"`
}

// BulkUpsertResponse reports the outcome of a best-effort batch upsert
type BulkUpsertResponse struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed,omitempty"`
}
