package domain

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination mocks/mock_email_record_repository.go -package mocks github.com/sendsight/sendsight/internal/domain EmailRecordRepository

// EmailRecord is the internal identity of one sent email, resolved from
// the provider's message identifier plus the recipient address.
type EmailRecord struct {
	EmailID        string `json:"email_id"`
	CampaignID     string `json:"campaign_id"`
	OrganizationID string `json:"organization_id"`
}

// ErrEmailRecordNotFound is returned when no internal record matches a
// provider message. Adapters treat it as a silent skip: provider events
// can legitimately arrive for emails this system never sent.
type ErrEmailRecordNotFound struct {
	Provider  string
	MessageID string
	Recipient string
}

func (e *ErrEmailRecordNotFound) Error() string {
	return fmt.Sprintf("no email record for provider %s message %s recipient %s", e.Provider, e.MessageID, e.Recipient)
}

// EmailRecordRepository resolves provider message identities to internal
// send records.
type EmailRecordRepository interface {
	// FindByMessage looks up the internal record for a provider message
	// id and recipient address. Returns ErrEmailRecordNotFound when the
	// system has no record of the send.
	FindByMessage(ctx context.Context, provider, messageID, recipientEmail string) (*EmailRecord, error)
}
