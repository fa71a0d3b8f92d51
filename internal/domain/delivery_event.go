package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_delivery_event_repository.go -package mocks github.com/sendsight/sendsight/internal/domain DeliveryEventRepository
//go:generate mockgen -destination mocks/mock_delivery_counter_repository.go -package mocks github.com/sendsight/sendsight/internal/domain DeliveryCounterRepository
//go:generate mockgen -destination mocks/mock_delivery_tracker.go -package mocks github.com/sendsight/sendsight/internal/domain DeliveryTrackerService

// DeliveryEventType defines the canonical lifecycle moment of a sent email.
// Ordering is not a strict lifecycle: an email may be opened several times,
// or clicked without a recorded open.
type DeliveryEventType string

const (
	EventSent         DeliveryEventType = "sent"
	EventDelivered    DeliveryEventType = "delivered"
	EventOpened       DeliveryEventType = "opened"
	EventClicked      DeliveryEventType = "clicked"
	EventBounced      DeliveryEventType = "bounced"
	EventComplained   DeliveryEventType = "complained"
	EventUnsubscribed DeliveryEventType = "unsubscribed"
	EventDeferred     DeliveryEventType = "deferred"
	EventBlocked      DeliveryEventType = "blocked"
	EventRejected     DeliveryEventType = "rejected"
)

// DeliveryEventTypes lists every canonical event type.
var DeliveryEventTypes = []DeliveryEventType{
	EventSent, EventDelivered, EventOpened, EventClicked, EventBounced,
	EventComplained, EventUnsubscribed, EventDeferred, EventBlocked,
	EventRejected,
}

// IsValid reports whether t is one of the canonical event types.
func (t DeliveryEventType) IsValid() bool {
	for _, known := range DeliveryEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DeliveryEvent is an immutable fact representing one observed lifecycle
// moment of one sent email. Adapters construct it without ID/Timestamp;
// the tracker finalizes both at ingestion time. The synthetic ID is not
// globally unique under provider redelivery: consumers must tolerate
// duplicate facts.
type DeliveryEvent struct {
	ID             string                 `json:"id"`
	EmailID        string                 `json:"email_id"`
	CampaignID     string                 `json:"campaign_id"`
	OrganizationID string                 `json:"organization_id"`
	RecipientEmail string                 `json:"recipient_email"`
	EventType      DeliveryEventType      `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Provider       string                 `json:"provider,omitempty"`
	MessageID      string                 `json:"message_id,omitempty"`

	// Bounce/complaint classification
	BounceType    string `json:"bounce_type,omitempty"`
	ComplaintType string `json:"complaint_type,omitempty"`

	// Only populated for open/click events
	UserAgent string `json:"user_agent,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Validate checks the fields an adapter must populate before tracking.
func (e *DeliveryEvent) Validate() error {
	if e.EmailID == "" {
		return fmt.Errorf("email_id is required")
	}
	if e.OrganizationID == "" {
		return fmt.Errorf("organization_id is required")
	}
	if e.RecipientEmail == "" {
		return fmt.Errorf("recipient_email is required")
	}
	if !e.EventType.IsValid() {
		return fmt.Errorf("invalid event type: %s", e.EventType)
	}
	return nil
}

// EventFilter scopes durable-store queries. OrganizationID is always
// required: every query is tenant-scoped.
type EventFilter struct {
	OrganizationID string
	CampaignID     string // optional
	StartDate      *time.Time
	EndDate        *time.Time
}

// DeliveryEventRepository is the durable, append-only store for events.
// Rows are never updated; the only deletion path is retention purge.
type DeliveryEventRepository interface {
	// InsertEvent appends one event.
	InsertEvent(ctx context.Context, event *DeliveryEvent) error

	// CountByEventType returns per-type event counts under the filter.
	CountByEventType(ctx context.Context, filter EventFilter) (map[DeliveryEventType]int64, error)

	// QueryTrends returns time-bucketed series at the given granularity
	// (hour, day, week or month).
	QueryTrends(ctx context.Context, filter EventFilter, granularity string) ([]TrendPoint, error)

	// QueryBreakdown returns event counts grouped by provider, hour of
	// day, day, location and device.
	QueryBreakdown(ctx context.Context, filter EventFilter) (*AnalyticsBreakdown, error)

	// ListEvents returns up to limit matching events, most recent first.
	ListEvents(ctx context.Context, filter EventFilter, limit int) ([]*DeliveryEvent, error)

	// DeleteEventsBefore purges events older than cutoff and returns the
	// number deleted.
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountEventsSince counts events with timestamp >= since across all
	// organizations. Used by health probes.
	CountEventsSince(ctx context.Context, since time.Time) (int64, error)
}

// ErrCacheMiss is returned by DeliveryCounterRepository.CacheGet when the
// key is absent or expired.
var ErrCacheMiss = fmt.Errorf("cache miss")

// DeliveryCounterRepository holds derived, rebuildable state in the fast
// cache: rolling per-bucket counters and cached analytics payloads. It is
// never the source of truth and may be flushed without data loss.
type DeliveryCounterRepository interface {
	// IncrementCounters bumps the hour- and day-bucket counters for the
	// event, plus the per-provider day counter when a provider is set.
	IncrementCounters(ctx context.Context, event *DeliveryEvent) error

	// CacheGet returns a cached payload, or ErrCacheMiss.
	CacheGet(ctx context.Context, key string) ([]byte, error)

	// CacheSet stores a payload under key with the given TTL.
	CacheSet(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Ping probes cache reachability.
	Ping(ctx context.Context) error
}

// DeliveryTrackerService is the single entry/exit point for canonical
// events and all derived analytics.
type DeliveryTrackerService interface {
	// TrackEvent finalizes and records a canonical event. It is
	// best-effort by contract: failures are logged and counted
	// internally, never surfaced, so webhook ingestion cannot fail on a
	// degraded tracking path.
	TrackEvent(ctx context.Context, event *DeliveryEvent)

	GetAnalytics(ctx context.Context, organizationID string, query AnalyticsQuery) (*DeliveryAnalytics, error)
	GetRealTimeStats(ctx context.Context, organizationID, campaignID string) (*RealTimeStats, error)
	GetDeliveryHealthScore(ctx context.Context, organizationID, campaignID string) (*HealthScore, error)
	ExportDeliveryData(ctx context.Context, organizationID string, opts ExportOptions) (string, error)
	CleanupOldData(ctx context.Context, retentionDays int) (int64, error)
	HealthCheck(ctx context.Context) *HealthStatus
}
