package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sendsight/sendsight/internal/domain"
)

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new PostgreSQL repository for contact
// suppression state.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) UpdateStatus(ctx context.Context, organizationID, email string, status domain.ContactStatus) error {
	query := `
		UPDATE contacts
		SET status = $1, updated_at = $2
		WHERE organization_id = $3 AND email = $4
	`

	_, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), organizationID, email)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}

	return nil
}

func (r *contactRepository) MarkUnsubscribed(ctx context.Context, organizationID, email string, at time.Time) error {
	query := `
		UPDATE contacts
		SET status = $1, unsubscribed_at = $2, updated_at = $3
		WHERE organization_id = $4 AND email = $5
	`

	_, err := r.db.ExecContext(ctx, query, string(domain.ContactStatusUnsubscribed), at, time.Now().UTC(), organizationID, email)
	if err != nil {
		return fmt.Errorf("failed to mark contact unsubscribed: %w", err)
	}

	return nil
}
