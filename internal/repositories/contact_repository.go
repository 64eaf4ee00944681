package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierweb/sitecms/internal/models"
)

// ErrContactNotFound is returned when a contact id does not exist
var ErrContactNotFound = errors.New("contact not found")

// contactRepository implements contact submission data access
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) *contactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create inserts a new contact submission and fills in the assigned id
func (r *contactRepository) Create(ctx context.Context, c *models.Contact) error {
	query := `
		INSERT INTO contacts (name, email, phone, message)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.Message)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted contact id: %w", err)
	}
	c.ID = int(id)

	return nil
}

// List retrieves all contact submissions, newest first
func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, name, email, phone, message, is_read, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// MarkRead flags a contact submission as read
func (r *contactRepository) MarkRead(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE contacts SET is_read = TRUE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		// Already-read rows also report 0 affected; confirm existence
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM contacts WHERE id = ? LIMIT 1`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrContactNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check contact: %w", err)
		}
	}

	return nil
}

// Delete removes a contact submission
func (r *contactRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}
