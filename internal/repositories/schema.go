// Package repositories provides raw SQL data access for all entities.
//
// The three content tables (settings, content_sections, media_assets) are
// not part of the migration set: they are created lazily on first use by
// EnsureContentSchema, so the admin panel works against a database that
// was never explicitly migrated for content.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// mysqlErrNoSuchTable is the server error code for "table doesn't exist"
const mysqlErrNoSuchTable = 1146

const createSettingsTable = `
	CREATE TABLE IF NOT EXISTS settings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		setting_key VARCHAR(191) NOT NULL UNIQUE,
		setting_value TEXT NOT NULL,
		setting_type VARCHAR(32) NOT NULL DEFAULT 'text',
		category VARCHAR(100) NOT NULL DEFAULT 'general',
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const createContentSectionsTable = `
	CREATE TABLE IF NOT EXISTS content_sections (
		id INT AUTO_INCREMENT PRIMARY KEY,
		section_key VARCHAR(191) NOT NULL UNIQUE,
		name VARCHAR(255) NULL,
		content MEDIUMTEXT NOT NULL,
		page VARCHAR(100) NOT NULL DEFAULT 'home',
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const createMediaAssetsTable = `
	CREATE TABLE IF NOT EXISTS media_assets (
		id INT AUTO_INCREMENT PRIMARY KEY,
		filename VARCHAR(255) NOT NULL,
		original_filename VARCHAR(255) NOT NULL,
		file_path VARCHAR(500) NOT NULL,
		file_type VARCHAR(32) NOT NULL DEFAULT '',
		file_size BIGINT NOT NULL DEFAULT 0,
		mime_type VARCHAR(100) NOT NULL DEFAULT '',
		alt_text VARCHAR(255) NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT 'general',
		uploaded_by INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

// EnsureContentSchema idempotently creates the content tables. Safe to call
// concurrently: CREATE TABLE IF NOT EXISTS never fails because another
// request created the table a moment earlier.
func EnsureContentSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range []string{createSettingsTable, createContentSectionsTable, createMediaAssetsTable} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to ensure content schema: %w", err)
		}
	}
	return nil
}

// isMissingTable reports whether err (possibly wrapped) is the MySQL
// "table doesn't exist" error
func isMissingTable(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoSuchTable
}

// schemaBootstrap gives the content repositories their lazy ensure-then-execute
// behavior: an operation failing on a missing table triggers one schema
// creation and one retry. A second missing-table failure is surfaced as-is,
// never retried again.
type schemaBootstrap struct {
	db *sql.DB
}

// run executes op, recovering once from a missing content table
func (b schemaBootstrap) run(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || !isMissingTable(err) {
		return err
	}

	if ensureErr := EnsureContentSchema(ctx, b.db); ensureErr != nil {
		return fmt.Errorf("schema bootstrap failed: %w", ensureErr)
	}

	return op()
}
