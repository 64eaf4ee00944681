package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateFilename generates a collision-resistant stored filename of the
// form {token}_{unix-timestamp}{ext}. The random token plus the timestamp
// make concurrent uploads of identically named files safe without
// consulting existing rows or files.
// extension should include the leading dot (e.g. ".jpg")
func GenerateFilename(extension string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return fmt.Sprintf("%s_%d%s", token, time.Now().Unix(), strings.ToLower(extension))
}

// SanitizeCategory validates a media category for use as an on-disk
// directory name. Path separators and traversal sequences are rejected;
// an empty category falls back to the provided default.
func SanitizeCategory(category, fallback string) (string, error) {
	if category == "" {
		return fallback, nil
	}
	if strings.ContainsAny(category, `/\`) || strings.Contains(category, "..") {
		return "", fmt.Errorf("invalid category %q", category)
	}
	return category, nil
}
