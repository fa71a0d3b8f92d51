package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/sendsight/sendsight/config"
	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

// WebhookService verifies, parses and normalizes provider webhook
// deliveries and feeds the resulting canonical events to the tracker.
//
// Error handling follows a strict split: envelope failures (bad
// signature, malformed body, missing transport headers) abort the whole
// call with an error, while per-event failures only increment the Errors
// tally so one bad entry cannot poison a batch.
type WebhookService struct {
	tracker   domain.DeliveryTrackerService
	emailRepo domain.EmailRecordRepository
	logger    logger.Logger

	// sendGridKey is nil when no public key is configured; verification
	// is then bypassed with a warning.
	sendGridKey  *ecdsa.PublicKey
	resendSecret string
}

// NewWebhookService creates a new WebhookService. It fails only when a
// configured SendGrid public key cannot be parsed: a present but broken
// key is a deployment error, not a reason to silently bypass
// verification.
func NewWebhookService(
	tracker domain.DeliveryTrackerService,
	emailRepo domain.EmailRecordRepository,
	cfg config.WebhookConfig,
	logger logger.Logger,
) (*WebhookService, error) {
	s := &WebhookService{
		tracker:      tracker,
		emailRepo:    emailRepo,
		logger:       logger,
		resendSecret: cfg.ResendSecret,
	}

	if cfg.SendGridPublicKey != "" {
		key, err := parseSendGridPublicKey(cfg.SendGridPublicKey)
		if err != nil {
			return nil, fmt.Errorf("invalid SendGrid webhook public key: %w", err)
		}
		s.sendGridKey = key
	}

	return s, nil
}

// HandleGenericWebhook accepts any valid JSON payload, logs it for
// inspection and acknowledges without tracking anything. It exists so
// new providers can be pointed at the system before an adapter is
// written.
func (s *WebhookService) HandleGenericWebhook(ctx context.Context, body []byte) (*domain.WebhookResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid generic webhook payload: not valid JSON")
	}

	s.logger.WithFields(map[string]interface{}{
		"bytes": len(body),
		"type":  gjson.GetBytes(body, "type").String(),
		"event": gjson.GetBytes(body, "event").String(),
	}).Info("Received generic webhook")

	return &domain.WebhookResult{}, nil
}

// resolveEmailRecord looks up the internal send record for a provider
// message. A missing record is reported as (nil, false, no error bump):
// providers legitimately deliver events for emails this system never
// sent.
func (s *WebhookService) resolveEmailRecord(ctx context.Context, provider, messageID, recipient string) (*domain.EmailRecord, bool, error) {
	record, err := s.emailRepo.FindByMessage(ctx, provider, messageID, recipient)
	if err != nil {
		if _, ok := err.(*domain.ErrEmailRecordNotFound); ok {
			s.logger.WithFields(map[string]interface{}{
				"provider":   provider,
				"message_id": messageID,
				"recipient":  recipient,
			}).Warn("No email record for webhook event, skipping")
			return nil, false, nil
		}
		return nil, false, err
	}

	return record, true, nil
}
