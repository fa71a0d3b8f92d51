package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_contact_repository.go -package mocks github.com/sendsight/sendsight/internal/domain ContactRepository

// ContactStatus represents the suppression status of a contact within an
// organization. Status transitions driven by delivery events are
// last-event-wins, not additive.
type ContactStatus string

const (
	ContactStatusActive       ContactStatus = "ACTIVE"
	ContactStatusBounced      ContactStatus = "BOUNCED"
	ContactStatusComplained   ContactStatus = "COMPLAINED"
	ContactStatusUnsubscribed ContactStatus = "UNSUBSCRIBED"
)

// Contact is the slice of the contact record this subsystem owns: the
// suppression status keyed by (organization, email).
type Contact struct {
	Email          string        `json:"email"`
	OrganizationID string        `json:"organization_id"`
	Status         ContactStatus `json:"status"`
	UnsubscribedAt *time.Time    `json:"unsubscribed_at,omitempty"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ContactRepository mutates contact suppression state in response to
// delivery events.
type ContactRepository interface {
	// UpdateStatus sets the contact's status, scoped by organization.
	// A missing contact is a no-op, not an error.
	UpdateStatus(ctx context.Context, organizationID, email string, status ContactStatus) error

	// MarkUnsubscribed sets the UNSUBSCRIBED status and stamps
	// unsubscribed_at.
	MarkUnsubscribed(ctx context.Context, organizationID, email string, at time.Time) error
}
