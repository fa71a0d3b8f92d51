package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

// WebhookHandler exposes the public webhook endpoints providers post to.
type WebhookHandler struct {
	orchestrator domain.WebhookOrchestrator
	logger       logger.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(orchestrator domain.WebhookOrchestrator, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// RegisterRoutes registers the public webhook HTTP endpoints
func (h *WebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/webhooks/sendgrid", http.HandlerFunc(h.handleSendGrid))
	mux.Handle("/webhooks/aws", http.HandlerFunc(h.handleAWS))
	mux.Handle("/webhooks/resend", http.HandlerFunc(h.handleResend))
	mux.Handle("/webhooks/generic", http.HandlerFunc(h.handleGeneric))
}

func (h *WebhookHandler) handleSendGrid(w http.ResponseWriter, r *http.Request) {
	h.handleProvider(w, r, "sendgrid", func(ctx context.Context, body []byte) (*domain.WebhookResult, error) {
		return h.orchestrator.HandleSendGridWebhook(ctx, r.Header, body)
	})
}

func (h *WebhookHandler) handleAWS(w http.ResponseWriter, r *http.Request) {
	h.handleProvider(w, r, "aws", func(ctx context.Context, body []byte) (*domain.WebhookResult, error) {
		return h.orchestrator.HandleAWSWebhook(ctx, r.Header, body)
	})
}

func (h *WebhookHandler) handleResend(w http.ResponseWriter, r *http.Request) {
	h.handleProvider(w, r, "resend", func(ctx context.Context, body []byte) (*domain.WebhookResult, error) {
		return h.orchestrator.HandleResendWebhook(ctx, r.Header, body)
	})
}

func (h *WebhookHandler) handleGeneric(w http.ResponseWriter, r *http.Request) {
	h.handleProvider(w, r, "generic", func(ctx context.Context, body []byte) (*domain.WebhookResult, error) {
		return h.orchestrator.HandleGenericWebhook(ctx, body)
	})
}

func (h *WebhookHandler) handleProvider(w http.ResponseWriter, r *http.Request, provider string, process func(context.Context, []byte) (*domain.WebhookResult, error)) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to read webhook request body")
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	result, err := process(r.Context(), body)
	if err != nil {
		h.logger.WithField("provider", provider).
			WithField("error", err.Error()).
			Error("Failed to process webhook")

		if errors.Is(err, domain.ErrInvalidSignature) {
			WriteJSONError(w, "Invalid webhook signature", http.StatusUnauthorized)
			return
		}
		WriteJSONError(w, "Failed to process webhook", http.StatusBadRequest)
		return
	}

	h.logger.WithField("provider", provider).
		WithField("processed", result.Processed).
		WithField("errors", result.Errors).
		Info("Processed webhook")

	writeJSON(w, http.StatusOK, result)
}
