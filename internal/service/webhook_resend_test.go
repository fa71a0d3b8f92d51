package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendsight/sendsight/config"
	"github.com/sendsight/sendsight/internal/domain"
)

func resendSignatureHeaders(secret string, body []byte) http.Header {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	headers := http.Header{}
	headers.Set(domain.ResendSignatureHeader, hex.EncodeToString(mac.Sum(nil)))
	return headers
}

func TestHandleResendWebhook_Clicked(t *testing.T) {
	svc, m := newTestWebhookService(t, config.WebhookConfig{})

	body := []byte(`{
		"type": "email.clicked",
		"created_at": "2025-03-15T10:30:00Z",
		"data": {
			"email_id": "re-msg-1",
			"to": ["a@example.com"],
			"click": {"link": "https://example.com/offer", "ipAddress": "1.2.3.4", "userAgent": "Mozilla/5.0"}
		}
	}`)

	m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "resend", "re-msg-1", "a@example.com").
		Return(&domain.EmailRecord{EmailID: "email-1", CampaignID: "camp-1", OrganizationID: "org-1"}, nil)
	m.tracker.EXPECT().TrackEvent(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e *domain.DeliveryEvent) {
			assert.Equal(t, domain.EventClicked, e.EventType)
			assert.Equal(t, "resend", e.Provider)
			assert.Equal(t, "Mozilla/5.0", e.UserAgent)
			assert.Equal(t, "https://example.com/offer", e.Metadata["url"])
		})

	result, err := svc.HandleResendWebhook(context.Background(), http.Header{}, body)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestHandleResendWebhook_ClickAndBounceMetadataMerged(t *testing.T) {
	svc, m := newTestWebhookService(t, config.WebhookConfig{})

	body := []byte(`{
		"type": "email.bounced",
		"data": {
			"email_id": "re-msg-2",
			"to": ["a@example.com"],
			"click": {"link": "https://example.com/offer", "ipAddress": "1.2.3.4", "userAgent": "Mozilla/5.0"},
			"bounce": {"type": "Permanent", "subType": "General", "message": "550 user unknown"}
		}
	}`)

	m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "resend", "re-msg-2", "a@example.com").
		Return(&domain.EmailRecord{EmailID: "email-2", OrganizationID: "org-1"}, nil)
	m.tracker.EXPECT().TrackEvent(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, e *domain.DeliveryEvent) {
			assert.Equal(t, "Permanent", e.BounceType)
			assert.Equal(t, "https://example.com/offer", e.Metadata["url"])
			assert.Equal(t, "General", e.Metadata["bounce_sub_type"])
			assert.Equal(t, "550 user unknown", e.Metadata["bounce_message"])
		})

	result, err := svc.HandleResendWebhook(context.Background(), http.Header{}, body)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestHandleResendWebhook_Signature(t *testing.T) {
	secret := "whsec_test"
	cfg := config.WebhookConfig{ResendSecret: secret}
	body := []byte(`{"type":"email.delivered","data":{"email_id":"re-msg-1","to":["a@example.com"]}}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		svc, m := newTestWebhookService(t, cfg)

		m.emailRepo.EXPECT().FindByMessage(gomock.Any(), "resend", "re-msg-1", "a@example.com").
			Return(&domain.EmailRecord{EmailID: "email-1", OrganizationID: "org-1"}, nil)
		m.tracker.EXPECT().TrackEvent(gomock.Any(), gomock.Any())

		result, err := svc.HandleResendWebhook(context.Background(), resendSignatureHeaders(secret, body), body)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		svc, _ := newTestWebhookService(t, cfg)

		_, err := svc.HandleResendWebhook(context.Background(), resendSignatureHeaders("other", body), body)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		svc, _ := newTestWebhookService(t, cfg)

		_, err := svc.HandleResendWebhook(context.Background(), http.Header{}, body)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})
}

func TestHandleResendWebhook_UnknownType(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	body := []byte(`{"type":"email.scheduled","data":{"email_id":"re-msg-1","to":["a@example.com"]}}`)

	result, err := svc.HandleResendWebhook(context.Background(), http.Header{}, body)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Errors)
}

func TestHandleResendWebhook_MalformedBody(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	_, err := svc.HandleResendWebhook(context.Background(), http.Header{}, []byte(`{{`))
	require.Error(t, err)
}

func TestHandleGenericWebhook(t *testing.T) {
	svc, _ := newTestWebhookService(t, config.WebhookConfig{})

	t.Run("valid JSON is acknowledged without tracking", func(t *testing.T) {
		result, err := svc.HandleGenericWebhook(context.Background(), []byte(`{"event":"something","payload":{"a":1}}`))
		require.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
		assert.Equal(t, 0, result.Errors)
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		_, err := svc.HandleGenericWebhook(context.Background(), []byte(`not json`))
		require.Error(t, err)
	})
}
