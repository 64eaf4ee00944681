package models

import "time"

// MediaAsset is the catalog entry for an uploaded file. The entry and the
// file on disk are tracked independently: deleting the entry leaves the
// file, and a file may outlive a failed catalog write.
type MediaAsset struct {
	ID               int       `json:"id" db:"id"`
	Filename         string    `json:"filename" db:"filename"`
	OriginalFilename string    `json:"original_filename" db:"original_filename"`
	FilePath         string    `json:"file_path" db:"file_path"`
	FileType         string    `json:"file_type" db:"file_type"`
	FileSize         int64     `json:"file_size" db:"file_size"`
	MimeType         string    `json:"mime_type" db:"mime_type"`
	AltText          string    `json:"alt_text" db:"alt_text"`
	Category         string    `json:"category" db:"category"`
	UploadedBy       int       `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	// URL is resolved per request from the stored path and the caller's
	// host; it is never persisted.
	URL string `json:"url,omitempty" db:"-"`
}

// DefaultMediaCategory doubles as the on-disk subdirectory for uploads
const DefaultMediaCategory = "general"
