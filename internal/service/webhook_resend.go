package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendsight/sendsight/internal/domain"
)

// HandleResendWebhook verifies and processes one Resend webhook
// delivery. Resend posts a single event per call, possibly addressed to
// several recipients.
func (s *WebhookService) HandleResendWebhook(ctx context.Context, headers http.Header, body []byte) (*domain.WebhookResult, error) {
	if s.resendSecret == "" {
		s.logger.Warn("Resend webhook signature verification bypassed: no secret configured")
	} else if !verifyResendSignature(s.resendSecret, headers, body) {
		return nil, domain.ErrInvalidSignature
	}

	var payload domain.ResendWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid Resend webhook payload: %w", err)
	}

	result := &domain.WebhookResult{}

	eventType, ok := domain.ResendEventMapping[payload.Type]
	if !ok {
		s.logger.WithField("type", payload.Type).Debug("Unknown Resend event type, skipping")
		return result, nil
	}

	for _, recipient := range payload.Data.To {
		record, found, err := s.resolveEmailRecord(ctx, "resend", payload.Data.EmailID, recipient)
		if err != nil {
			s.logger.WithField("error", err.Error()).Error("Resend email record lookup failed")
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
			RecipientEmail: recipient,
			EventType:      eventType,
			Provider:       "resend",
			MessageID:      payload.Data.EmailID,
		}

		metadata := map[string]interface{}{}
		if payload.Data.Click != nil {
			event.UserAgent = payload.Data.Click.UserAgent
			event.IPAddress = payload.Data.Click.IPAddress
			metadata["url"] = payload.Data.Click.Link
		}
		if payload.Data.Bounce != nil {
			event.BounceType = payload.Data.Bounce.Type
			metadata["bounce_sub_type"] = payload.Data.Bounce.SubType
			metadata["bounce_message"] = payload.Data.Bounce.Message
		}
		if len(metadata) > 0 {
			event.Metadata = metadata
		}

		s.tracker.TrackEvent(ctx, event)
		result.Processed++
	}

	return result, nil
}

// verifyResendSignature checks the hex HMAC-SHA256 of the raw body
// against the signature header using a constant-time compare.
func verifyResendSignature(secret string, headers http.Header, body []byte) bool {
	signature := headers.Get(domain.ResendSignatureHeader)
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
