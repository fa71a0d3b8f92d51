package domain

// SNS delivery headers. Their presence is the only verification performed
// on AWS webhooks: the SNS message signature and certificate chain are
// not validated. See DESIGN.md for the documented hardening gap.
const (
	SNSMessageTypeHeader = "X-Amz-Sns-Message-Type"
	SNSTopicArnHeader    = "X-Amz-Sns-Topic-Arn"
)

// SNS message types.
const (
	SNSTypeSubscriptionConfirmation = "SubscriptionConfirmation"
	SNSTypeNotification             = "Notification"
)

// SNSEnvelope is the outer SNS message wrapping an SES notification.
type SNSEnvelope struct {
	Type         string `json:"Type"`
	MessageID    string `json:"MessageId"`
	TopicArn     string `json:"TopicArn"`
	Message      string `json:"Message"`
	Timestamp    string `json:"Timestamp"`
	SubscribeURL string `json:"SubscribeURL,omitempty"`
}

// SESNotification is the SES payload carried in an SNS Message field.
// Exactly one of Bounce, Complaint or Delivery is set, according to
// NotificationType.
type SESNotification struct {
	NotificationType string        `json:"notificationType"`
	Mail             SESMail       `json:"mail"`
	Bounce           *SESBounce    `json:"bounce,omitempty"`
	Complaint        *SESComplaint `json:"complaint,omitempty"`
	Delivery         *SESDelivery  `json:"delivery,omitempty"`
}

// SESMail identifies the original message.
type SESMail struct {
	MessageID   string   `json:"messageId"`
	Timestamp   string   `json:"timestamp"`
	Source      string   `json:"source"`
	Destination []string `json:"destination"`
}

// SESBounce describes a bounce, possibly for several recipients. Each
// recipient yields one independent canonical event.
type SESBounce struct {
	BounceType        string                `json:"bounceType"`
	BounceSubType     string                `json:"bounceSubType"`
	BouncedRecipients []SESBouncedRecipient `json:"bouncedRecipients"`
	Timestamp         string                `json:"timestamp"`
}

type SESBouncedRecipient struct {
	EmailAddress   string `json:"emailAddress"`
	Action         string `json:"action,omitempty"`
	Status         string `json:"status,omitempty"`
	DiagnosticCode string `json:"diagnosticCode,omitempty"`
}

// Recipient returns the bounced recipient entry for the given address,
// or nil when the bounce does not list it.
func (b *SESBounce) Recipient(email string) *SESBouncedRecipient {
	for i := range b.BouncedRecipients {
		if b.BouncedRecipients[i].EmailAddress == email {
			return &b.BouncedRecipients[i]
		}
	}
	return nil
}

// SESComplaint describes a spam complaint, possibly for several
// recipients.
type SESComplaint struct {
	ComplainedRecipients  []SESComplainedRecipient `json:"complainedRecipients"`
	ComplaintFeedbackType string                   `json:"complaintFeedbackType,omitempty"`
	Timestamp             string                   `json:"timestamp"`
}

type SESComplainedRecipient struct {
	EmailAddress string `json:"emailAddress"`
}

// SESDelivery describes a successful delivery to one or more recipients.
type SESDelivery struct {
	Recipients           []string `json:"recipients"`
	Timestamp            string   `json:"timestamp"`
	ProcessingTimeMillis int64    `json:"processingTimeMillis,omitempty"`
	SMTPResponse         string   `json:"smtpResponse,omitempty"`
}

// SESNotificationMapping maps SES notification types to canonical types.
// Absent entries are skipped.
var SESNotificationMapping = map[string]DeliveryEventType{
	"Bounce":        EventBounced,
	"Complaint":     EventComplained,
	"Delivery":      EventDelivered,
	"Send":          EventSent,
	"Reject":        EventRejected,
	"DeliveryDelay": EventDeferred,
}
