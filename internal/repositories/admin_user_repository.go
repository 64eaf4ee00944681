package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrAdminUserNotFound is returned when an admin user does not exist
var ErrAdminUserNotFound = errors.New("admin user not found")

// adminUserRepository implements admin account data access
type adminUserRepository struct {
	db *sql.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *sql.DB) *adminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

// GetByUsername retrieves an admin user by username
func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, email, created_at
		FROM admin_users
		WHERE username = ?
		LIMIT 1
	`

	user := &models.AdminUser{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return user, nil
}

// GetByID retrieves an admin user by id
func (r *adminUserRepository) GetByID(ctx context.Context, id int) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, email, created_at
		FROM admin_users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.AdminUser{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return user, nil
}
