package domain

import "strings"

// SendGrid event webhook headers.
const (
	SendGridSignatureHeader = "X-Twilio-Email-Event-Webhook-Signature"
	SendGridTimestampHeader = "X-Twilio-Email-Event-Webhook-Timestamp"
)

// SendGridEvent is one entry in a SendGrid event webhook batch. SendGrid
// always posts a JSON array, even for a single event.
type SendGridEvent struct {
	Email       string `json:"email"`
	Timestamp   int64  `json:"timestamp"`
	Event       string `json:"event"`
	SGEventID   string `json:"sg_event_id"`
	SGMessageID string `json:"sg_message_id"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status,omitempty"`
	Type        string `json:"type,omitempty"` // bounce classification
	BounceType  string `json:"bounce_classification,omitempty"`
	URL         string `json:"url,omitempty"`
	UserAgent   string `json:"useragent,omitempty"`
	IP          string `json:"ip,omitempty"`
}

// SendGridEventMapping maps SendGrid event strings to canonical types.
// Absent entries are forward-compatible no-ops: the event is skipped,
// not treated as an error.
var SendGridEventMapping = map[string]DeliveryEventType{
	"processed":         EventSent,
	"delivered":         EventDelivered,
	"open":              EventOpened,
	"click":             EventClicked,
	"bounce":            EventBounced,
	"dropped":           EventRejected,
	"deferred":          EventDeferred,
	"blocked":           EventBlocked,
	"spamreport":        EventComplained,
	"unsubscribe":       EventUnsubscribed,
	"group_unsubscribe": EventUnsubscribed,
}

// NormalizeSendGridMessageID strips the filter-node suffix SendGrid
// appends to sg_message_id ("<id>.filterNNN...") so it matches the id
// recorded at send time.
func NormalizeSendGridMessageID(id string) string {
	if idx := strings.Index(id, ".filter"); idx > 0 {
		return id[:idx]
	}
	return id
}
