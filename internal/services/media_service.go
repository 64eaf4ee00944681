package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/storage"
)

// Validation errors reported to the uploader, never retried
var (
	// ErrUnsupportedMediaType is returned when an upload's MIME type is not allow-listed
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrFileTooLarge is returned when an upload exceeds the configured maximum size
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidCategory is returned when a category is unusable as a directory name
	ErrInvalidCategory = errors.New("invalid category")
)

// allowedMimeTypes is the upload allow-list
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// MediaRepository is the interface that wraps methods for media catalog data access
type MediaRepository interface {
	// Create inserts a media asset row and fills in the assigned id.
	Create(ctx context.Context, asset *models.MediaAsset) error
	// List retrieves assets, filtered by category when category is non-empty.
	List(ctx context.Context, category string) ([]models.MediaAsset, error)
	// Delete removes a catalog row; the file on disk is untouched.
	Delete(ctx context.Context, id int) error
}

// UploadStorage is the interface that wraps the filesystem side of uploads
type UploadStorage interface {
	// Root returns the upload root directory.
	Root() string
	// Save writes src to {root}/{category}/{filename}, creating the category
	// directory on demand, and returns the absolute path and bytes written.
	Save(category, filename string, src io.Reader) (string, int64, error)
}

// RequestContext carries the request attributes needed to resolve asset URLs.
// It replaces ambient request state: handlers build it explicitly from the
// inbound request.
type RequestContext struct {
	Scheme string
	Host   string
}

// MediaURLConfig holds the environment conventions for public asset URLs
type MediaURLConfig struct {
	// PublicPathPrefix is prepended when assets are served through a
	// general-purpose web server (e.g. "/backend").
	PublicPathPrefix string
	// DevServerPort identifies requests hitting the built-in dev server,
	// which serves uploads without the prefix.
	DevServerPort string
}

// mediaService implements the media library business logic
type mediaService struct {
	repo          MediaRepository
	storage       UploadStorage
	logger        *zap.Logger
	maxUploadSize int64
	urlConfig     MediaURLConfig
}

// NewMediaService creates a new media service
func NewMediaService(repo MediaRepository, uploadStorage UploadStorage, logger *zap.Logger, maxUploadSize int64, urlConfig MediaURLConfig) *mediaService {
	return &mediaService{
		repo:          repo,
		storage:       uploadStorage,
		logger:        logger,
		maxUploadSize: maxUploadSize,
		urlConfig:     urlConfig,
	}
}

// Upload validates, stores and catalogs an uploaded file.
//
// The physical write happens before the catalog insert. A catalog insert
// failing after a successful write is logged and deliberately NOT reported
// as an error: the file is retrievable, and lost metadata is recoverable
// where a lost upload is not.
func (s *mediaService) Upload(ctx context.Context, src io.Reader, originalFilename, mimeType string, size int64, category, altText string, uploadedBy int) (*models.MediaAsset, error) {
	if !allowedMimeTypes[strings.ToLower(mimeType)] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mimeType)
	}
	if size > s.maxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, size, s.maxUploadSize)
	}

	cleanCategory, err := storage.SanitizeCategory(category, models.DefaultMediaCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalFilename), "."))
	filename := storage.GenerateFilename(filepath.Ext(originalFilename))

	path, written, err := s.storage.Save(cleanCategory, filename, src)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	asset := &models.MediaAsset{
		Filename:         filename,
		OriginalFilename: originalFilename,
		FilePath:         path,
		FileType:         ext,
		FileSize:         written,
		MimeType:         mimeType,
		AltText:          altText,
		Category:         cleanCategory,
		UploadedBy:       uploadedBy,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		// The file is on disk and usable; surface the catalog failure to
		// operators but not to the uploader
		s.logger.Error("uploaded file stored but catalog write failed",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	return asset, nil
}

// List retrieves media assets with URLs resolved for the calling request
func (s *mediaService) List(ctx context.Context, category string, rc RequestContext) ([]models.MediaAsset, error) {
	assets, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	for i := range assets {
		assets[i].URL = s.ResolveURL(rc, &assets[i])
	}

	return assets, nil
}

// Delete removes a catalog row. The underlying file is kept on disk.
func (s *mediaService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ResolveURL builds the fully-qualified public URL for an asset.
//
// The stored file_path is reduced to a category/filename relative form when
// it still lives under the current upload root with forward slashes. Paths
// recorded on a different OS or under an older layout don't reduce cleanly;
// those are reconstructed from the category and filename columns instead,
// which keeps the catalog portable across deployments.
func (s *mediaService) ResolveURL(rc RequestContext, asset *models.MediaAsset) string {
	rel, ok := relativeUploadPath(s.storage.Root(), asset.FilePath)
	if !ok {
		rel = asset.Category + "/" + asset.Filename
	}

	prefix := s.urlConfig.PublicPathPrefix
	if hostPort(rc.Host) == s.urlConfig.DevServerPort {
		// The built-in dev server serves uploads from the site root
		prefix = ""
	}

	return fmt.Sprintf("%s://%s%s/uploads/%s", rc.Scheme, rc.Host, prefix, rel)
}

// relativeUploadPath extracts "category/filename" from an absolute stored
// path. It only succeeds for forward-slash paths under the upload root's
// base directory with exactly two trailing segments.
func relativeUploadPath(root, filePath string) (string, bool) {
	base := filepath.Base(root)
	marker := "/" + base + "/"

	idx := strings.LastIndex(filePath, marker)
	if idx < 0 {
		return "", false
	}

	rel := filePath[idx+len(marker):]
	parts := strings.Split(rel, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}

	return rel, true
}

// hostPort returns the port of a host[:port] value, or "" when absent
func hostPort(host string) string {
	_, port, err := net.SplitHostPort(host)
	if err != nil {
		return ""
	}
	return port
}
