package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendsight/sendsight/internal/domain"
)

type emailRecordRepository struct {
	db *sql.DB
}

// NewEmailRecordRepository creates a new PostgreSQL repository for email
// send records.
func NewEmailRecordRepository(db *sql.DB) domain.EmailRecordRepository {
	return &emailRecordRepository{db: db}
}

func (r *emailRecordRepository) FindByMessage(ctx context.Context, provider, messageID, recipientEmail string) (*domain.EmailRecord, error) {
	query := `
		SELECT email_id, campaign_id, organization_id
		FROM email_records
		WHERE provider = $1 AND message_id = $2 AND recipient_email = $3
	`

	var record domain.EmailRecord
	err := r.db.QueryRowContext(ctx, query, provider, messageID, recipientEmail).
		Scan(&record.EmailID, &record.CampaignID, &record.OrganizationID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.ErrEmailRecordNotFound{
				Provider:  provider,
				MessageID: messageID,
				Recipient: recipientEmail,
			}
		}
		return nil, fmt.Errorf("failed to find email record: %w", err)
	}

	return &record, nil
}
