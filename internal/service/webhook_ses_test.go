package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendsight/sendsight/config"
	"github.com/sendsight/sendsight/internal/domain"
)

func snsHeaders(messageType string) http.Header {
	headers := http.Header{}
	headers.Set(domain.SNSMessageTypeHeader, messageType)
	headers.Set(domain.SNSTopicArnHeader, "arn:aws:sns:us-east-1:123456789012:ses-events")
	return headers
}

func snsEnvelope(t *testing.T, snsType string, message interface{}) []byte {
	payload, err := json.Marshal(message)
	require.NoError(t, err)

	envelope, err := json.Marshal(domain.SNSEnvelope{
		Type:      snsType,
		MessageID: "sns-msg-1",
		TopicArn:  "arn:aws:sns:us-east-1:123456789012:ses-events",
		Message:   string(payload),
	})
	require.NoError(t, err)
	return envelope
}

func TestHandleAWSWebhook_BounceFanOut(t *testing.T) {
	svc, m := newTestWebhookService(t, config.WebhookConfig{})

	notification := domain.SESNotification{
		NotificationType: "Bounce",
		Mail: domain.SESMail{
			MessageID:   "ses-msg-1",
			Destination: []string{"a@example.com", "b@example.com"},
		},
		Bounce: &domain.SESBounce{
			BounceType:    "Permanent",
			BounceSubType: "General",
			BouncedRecipients: []domain.SESBouncedRecipient{
				{EmailAddress: "a@example.com", Action: "failed", Status: "5.1.1", DiagnosticCode: "smtp; 550 5.1.1 user unknown"},
				{EmailAddress: "b@example.com", DiagnosticCode: "smtp; 550 mailbox full"},
			},
		},
	}

	m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "ses", "ses-msg-1", "a@example.com").
		Return(&domain.EmailRecord{EmailID: "email-a", OrganizationID: "org-1"}, nil)
	m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "ses", "ses-msg-1", "b@example.com").
		Return(&domain.EmailRecord{EmailID: "email-b", OrganizationID: "org-1"}, nil)

	var tracked []*domain.DeliveryEvent
	m.tracker.EXPECT().TrackEvent(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e *domain.DeliveryEvent) {
			tracked = append(tracked, e)
		}).Times(2)

	result, err := svc.HandleAWSWebhook(context.Background(), snsHeaders("Notification"), snsEnvelope(t, domain.SNSTypeNotification, notification))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Errors)

	require.Len(t, tracked, 2)
	for _, e := range tracked {
		assert.Equal(t, domain.EventBounced, e.EventType)
		assert.Equal(t, "Permanent", e.BounceType)
		assert.Equal(t, "ses", e.Provider)
		assert.Equal(t, "General", e.Metadata["bounce_sub_type"])
	}
	assert.Equal(t, "email-a", tracked[0].EmailID)
	assert.Equal(t, "smtp; 550 5.1.1 user unknown", tracked[0].Metadata["diagnostic_code"])
	assert.Equal(t, "failed", tracked[0].Metadata["action"])
	assert.Equal(t, "5.1.1", tracked[0].Metadata["status"])
	assert.Equal(t, "email-b", tracked[1].EmailID)
	assert.Equal(t, "smtp; 550 mailbox full", tracked[1].Metadata["diagnostic_code"])
	assert.NotContains(t, tracked[1].Metadata, "action")
}

func TestHandleAWSWebhook_Delivery(t *testing.T) {
	svc, m := newTestWebhookService(t, config.WebhookConfig{})

	notification := domain.SESNotification{
		NotificationType: "Delivery",
		Mail:             domain.SESMail{MessageID: "ses-msg-2"},
		Delivery: &domain.SESDelivery{
			Recipients:           []string{"a@example.com"},
			ProcessingTimeMillis: 831,
			SMTPResponse:         "250 2.6.0 message accepted",
		},
	}

	m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "ses", "ses-msg-2", "a@example.com").
		Return(&domain.EmailRecord{EmailID: "email-a", OrganizationID: "org-1"}, nil)
	m.tracker.EXPECT().TrackEvent(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e *domain.DeliveryEvent) {
			assert.Equal(t, domain.EventDelivered, e.EventType)
			assert.Equal(t, int64(831), e.Metadata["processing_time_millis"])
			assert.Equal(t, "250 2.6.0 message accepted", e.Metadata["smtp_response"])
		})

	result, err := svc.HandleAWSWebhook(context.Background(), snsHeaders("Notification"), snsEnvelope(t, domain.SNSTypeNotification, notification))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestHandleAWSWebhook_SubscriptionConfirmation(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	envelope, err := json.Marshal(domain.SNSEnvelope{
		Type:         domain.SNSTypeSubscriptionConfirmation,
		TopicArn:     "arn:aws:sns:us-east-1:123456789012:ses-events",
		SubscribeURL: "https://sns.us-east-1.amazonaws.com/?Action=ConfirmSubscription",
	})
	require.NoError(t, err)

	result, err := svc.HandleAWSWebhook(context.Background(), snsHeaders(domain.SNSTypeSubscriptionConfirmation), envelope)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Errors)
}

func TestHandleAWSWebhook_EnvelopeErrors(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	t.Run("missing SNS headers", func(t *testing.T) {
		_, err := svc.HandleAWSWebhook(context.Background(), http.Header{}, []byte(`{}`))
		require.Error(t, err)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		_, err := svc.HandleAWSWebhook(context.Background(), snsHeaders("Notification"), []byte(`not json`))
		require.Error(t, err)
	})

	t.Run("malformed inner message", func(t *testing.T) {
		envelope, err := json.Marshal(domain.SNSEnvelope{Type: domain.SNSTypeNotification, Message: "not json"})
		require.NoError(t, err)

		_, err = svc.HandleAWSWebhook(context.Background(), snsHeaders("Notification"), envelope)
		require.Error(t, err)
	})
}

func TestHandleAWSWebhook_UnknownNotificationType(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	notification := domain.SESNotification{
		NotificationType: "Open", // SES open tracking is not mapped
		Mail:             domain.SESMail{MessageID: "ses-msg-3", Destination: []string{"a@example.com"}},
	}

	result, err := svc.HandleAWSWebhook(context.Background(), snsHeaders("Notification"), snsEnvelope(t, domain.SNSTypeNotification, notification))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Errors)
}
