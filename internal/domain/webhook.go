package domain

import (
	"context"
	"errors"
	"net/http"
)

//go:generate mockgen -destination mocks/mock_webhook_orchestrator.go -package mocks github.com/sendsight/sendsight/internal/domain WebhookOrchestrator

// ErrInvalidSignature is returned when a webhook's signature verification
// fails against a configured key or secret. The whole request is rejected
// before any event is processed.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookResult tallies one webhook call. Processed counts events that
// were successfully tracked; Errors counts per-event processing failures.
// Lookup misses and unknown event types are silent skips and appear in
// neither count.
type WebhookResult struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// WebhookOrchestrator receives raw provider webhook deliveries, verifies
// and parses them, and feeds canonical events to the tracker. Envelope
// failures (bad signature, malformed body) abort the whole call with an
// error; per-event failures only increment the Errors tally.
type WebhookOrchestrator interface {
	HandleSendGridWebhook(ctx context.Context, headers http.Header, body []byte) (*WebhookResult, error)
	HandleAWSWebhook(ctx context.Context, headers http.Header, body []byte) (*WebhookResult, error)
	HandleResendWebhook(ctx context.Context, headers http.Header, body []byte) (*WebhookResult, error)
	HandleGenericWebhook(ctx context.Context, body []byte) (*WebhookResult, error)
}
