package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendsight/sendsight/internal/domain"
)

// HandleSendGridWebhook verifies and processes one SendGrid event
// webhook delivery. SendGrid posts a JSON array of events per call.
func (s *WebhookService) HandleSendGridWebhook(ctx context.Context, headers http.Header, body []byte) (*domain.WebhookResult, error) {
	if s.sendGridKey == nil {
		s.logger.Warn("SendGrid webhook signature verification bypassed: no public key configured")
	} else if !verifySendGridSignature(s.sendGridKey, headers, body) {
		return nil, domain.ErrInvalidSignature
	}

	var events []domain.SendGridEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("invalid SendGrid webhook payload: %w", err)
	}

	result := &domain.WebhookResult{}
	for _, sgEvent := range events {
		eventType, ok := domain.SendGridEventMapping[sgEvent.Event]
		if !ok {
			s.logger.WithField("event", sgEvent.Event).Debug("Unknown SendGrid event type, skipping")
			continue
		}

		messageID := domain.NormalizeSendGridMessageID(sgEvent.SGMessageID)
		record, found, err := s.resolveEmailRecord(ctx, "sendgrid", messageID, sgEvent.Email)
		if err != nil {
			s.logger.WithField("error", err.Error()).Error("SendGrid email record lookup failed")
			result.Errors++
			continue
		}
		if !found {
			continue
		}

		event := &domain.DeliveryEvent{
			EmailID:        record.EmailID,
			CampaignID:     record.CampaignID,
			OrganizationID: record.OrganizationID,
			RecipientEmail: sgEvent.Email,
			EventType:      eventType,
			Provider:       "sendgrid",
			MessageID:      messageID,
		}

		switch eventType {
		case domain.EventBounced:
			event.BounceType = sgEvent.Type
			event.Metadata = map[string]interface{}{
				"reason":                sgEvent.Reason,
				"status":                sgEvent.Status,
				"bounce_classification": sgEvent.BounceType,
			}
		case domain.EventOpened, domain.EventClicked:
			event.UserAgent = sgEvent.UserAgent
			event.IPAddress = sgEvent.IP
			if sgEvent.URL != "" {
				event.Metadata = map[string]interface{}{"url": sgEvent.URL}
			}
		case domain.EventRejected, domain.EventBlocked, domain.EventDeferred:
			if sgEvent.Reason != "" {
				event.Metadata = map[string]interface{}{"reason": sgEvent.Reason}
			}
		}

		s.tracker.TrackEvent(ctx, event)
		result.Processed++
	}

	return result, nil
}

// parseSendGridPublicKey decodes a base64 DER-encoded ECDSA public key.
func parseSendGridPublicKey(encoded string) (*ecdsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not ECDSA")
	}

	return key, nil
}

// verifySendGridSignature checks the ECDSA signature SendGrid computes
// over the timestamp header concatenated with the raw body.
func verifySendGridSignature(key *ecdsa.PublicKey, headers http.Header, body []byte) bool {
	signature := headers.Get(domain.SendGridSignatureHeader)
	timestamp := headers.Get(domain.SendGridTimestampHeader)
	if signature == "" || timestamp == "" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	digest := sha256.Sum256(append([]byte(timestamp), body...))
	return ecdsa.VerifyASN1(key, digest[:], decoded)
}
