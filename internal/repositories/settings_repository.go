package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrSettingNotFound is returned when a setting key does not exist
var ErrSettingNotFound = errors.New("setting not found")

// settingsRepository implements the settings key/value store
type settingsRepository struct {
	db        *sql.DB
	bootstrap schemaBootstrap
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{
		db:        db,
		bootstrap: schemaBootstrap{db: db},
	}
}

// Get retrieves a setting by its key
func (r *settingsRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	query := `
		SELECT id, setting_key, setting_value, setting_type, category, updated_at
		FROM settings
		WHERE setting_key = ?
		LIMIT 1
	`

	setting := &models.Setting{}
	err := r.bootstrap.run(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, key).Scan(
			&setting.ID,
			&setting.Key,
			&setting.Value,
			&setting.Type,
			&setting.Category,
			&setting.UpdatedAt,
		)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return setting, nil
}

// GetAll retrieves all settings, optionally filtered by category.
// No ordering is part of the contract.
func (r *settingsRepository) GetAll(ctx context.Context, category string) ([]models.Setting, error) {
	query := `
		SELECT id, setting_key, setting_value, setting_type, category, updated_at
		FROM settings
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}

	var settings []models.Setting
	err := r.bootstrap.run(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		settings = settings[:0]
		for rows.Next() {
			var s models.Setting
			if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Category, &s.UpdatedAt); err != nil {
				return err
			}
			settings = append(settings, s)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// Upsert atomically creates or replaces a setting. Two concurrent upserts of
// the same key never produce two rows; last writer wins. Type and category
// are only replaced when supplied, and default to 'text' / 'general' on
// first insert.
func (r *settingsRepository) Upsert(ctx context.Context, key, value, settingType, category string) (*models.Setting, error) {
	insertType := settingType
	if insertType == "" {
		insertType = models.SettingTypeText
	}
	insertCategory := category
	if insertCategory == "" {
		insertCategory = models.DefaultSettingCategory
	}

	query := `
		INSERT INTO settings (setting_key, setting_value, setting_type, category)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			setting_value = ?,
			setting_type = IF(? = '', setting_type, ?),
			category = IF(? = '', category, ?)
	`

	err := r.bootstrap.run(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			key, value, insertType, insertCategory,
			value,
			settingType, settingType,
			category, category,
		)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return r.Get(ctx, key)
}
