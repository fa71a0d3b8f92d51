package domain

// ResendSignatureHeader carries the hex-encoded HMAC-SHA256 of the raw
// request body.
const ResendSignatureHeader = "Resend-Signature"

// ResendWebhookPayload is a single Resend webhook delivery. Resend posts
// one event per call.
type ResendWebhookPayload struct {
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	Data      ResendEventData `json:"data"`
}

// ResendEventData is the event body shared across Resend event types,
// with optional click and bounce details.
type ResendEventData struct {
	EmailID   string        `json:"email_id"`
	From      string        `json:"from"`
	To        []string      `json:"to"`
	Subject   string        `json:"subject"`
	CreatedAt string        `json:"created_at"`
	Click     *ResendClick  `json:"click,omitempty"`
	Bounce    *ResendBounce `json:"bounce,omitempty"`
}

type ResendClick struct {
	Link      string `json:"link"`
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type ResendBounce struct {
	Type    string `json:"type,omitempty"`
	SubType string `json:"subType,omitempty"`
	Message string `json:"message,omitempty"`
}

// ResendEventMapping maps Resend event type strings to canonical types.
// Absent entries are skipped.
var ResendEventMapping = map[string]DeliveryEventType{
	"email.sent":             EventSent,
	"email.delivered":        EventDelivered,
	"email.delivery_delayed": EventDeferred,
	"email.bounced":          EventBounced,
	"email.complained":       EventComplained,
	"email.opened":           EventOpened,
	"email.clicked":          EventClicked,
}
