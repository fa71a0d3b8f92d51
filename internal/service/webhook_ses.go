package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendsight/sendsight/internal/domain"
)

// HandleAWSWebhook processes one SNS delivery carrying an SES
// notification. An SES notification can concern several recipients;
// each yields one independent canonical event.
//
// Verification is limited to requiring the SNS transport headers. The
// SNS message signature is not validated, so a sender who knows the
// endpoint URL can forge events.
func (s *WebhookService) HandleAWSWebhook(ctx context.Context, headers http.Header, body []byte) (*domain.WebhookResult, error) {
	if headers.Get(domain.SNSMessageTypeHeader) == "" || headers.Get(domain.SNSTopicArnHeader) == "" {
		return nil, fmt.Errorf("missing SNS message headers")
	}

	var envelope domain.SNSEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid SNS envelope: %w", err)
	}

	result := &domain.WebhookResult{}

	switch envelope.Type {
	case domain.SNSTypeSubscriptionConfirmation:
		// Confirmation is a manual step: surface the URL, do not fetch it.
		s.logger.WithFields(map[string]interface{}{
			"topic_arn":     envelope.TopicArn,
			"subscribe_url": envelope.SubscribeURL,
		}).Info("SNS subscription confirmation received, visit subscribe_url to confirm")
		return result, nil
	case domain.SNSTypeNotification:
		// fall through to the SES payload
	default:
		s.logger.WithField("type", envelope.Type).Info("Ignoring SNS message of unhandled type")
		return result, nil
	}

	var notification domain.SESNotification
	if err := json.Unmarshal([]byte(envelope.Message), &notification); err != nil {
		return nil, fmt.Errorf("invalid SES notification payload: %w", err)
	}

	eventType, ok := domain.SESNotificationMapping[notification.NotificationType]
	if !ok {
		s.logger.WithField("notification_type", notification.NotificationType).Debug("Unknown SES notification type, skipping")
		return result, nil
	}

	for _, recipient := range sesRecipients(&notification) {
		record, found, err := s.resolveEmailRecord(ctx, "ses", notification.Mail.MessageID, recipient)
		if err != nil {
			s.logger.WithField("error", err.Error()).Error("SES email record lookup failed")
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
			Provider:       "ses",
			MessageID:      notification.Mail.MessageID,
		}

		if notification.Bounce != nil {
			event.BounceType = notification.Bounce.BounceType
			metadata := map[string]interface{}{
				"bounce_sub_type": notification.Bounce.BounceSubType,
			}
			if bounced := notification.Bounce.Recipient(recipient); bounced != nil {
				if bounced.DiagnosticCode != "" {
					metadata["diagnostic_code"] = bounced.DiagnosticCode
				}
				if bounced.Action != "" {
					metadata["action"] = bounced.Action
				}
				if bounced.Status != "" {
					metadata["status"] = bounced.Status
				}
			}
			event.Metadata = metadata
		}
		if notification.Complaint != nil {
			event.ComplaintType = notification.Complaint.ComplaintFeedbackType
		}
		if notification.Delivery != nil {
			metadata := map[string]interface{}{}
			if notification.Delivery.ProcessingTimeMillis > 0 {
				metadata["processing_time_millis"] = notification.Delivery.ProcessingTimeMillis
			}
			if notification.Delivery.SMTPResponse != "" {
				metadata["smtp_response"] = notification.Delivery.SMTPResponse
			}
			if len(metadata) > 0 {
				event.Metadata = metadata
			}
		}

		s.tracker.TrackEvent(ctx, event)
		result.Processed++
	}

	return result, nil
}

// sesRecipients returns the recipients the notification concerns,
// falling back to the original destination list for notification types
// without their own recipient list.
func sesRecipients(n *domain.SESNotification) []string {
	switch {
	case n.Bounce != nil:
		recipients := make([]string, 0, len(n.Bounce.BouncedRecipients))
		for _, r := range n.Bounce.BouncedRecipients {
			recipients = append(recipients, r.EmailAddress)
		}
		return recipients
	case n.Complaint != nil:
		recipients := make([]string, 0, len(n.Complaint.ComplainedRecipients))
		for _, r := range n.Complaint.ComplainedRecipients {
			recipients = append(recipients, r.EmailAddress)
		}
		return recipients
	case n.Delivery != nil:
		return n.Delivery.Recipients
	default:
		return n.Mail.Destination
	}
}
