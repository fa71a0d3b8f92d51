package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

// AutomationService receives every tracked delivery event so downstream
// automations (drip sequences, re-engagement flows) can react to it.
// This implementation records the trigger; execution engines subscribe
// to the log stream.
type AutomationService struct {
	logger logger.Logger
}

// NewAutomationService creates a new AutomationService.
func NewAutomationService(logger logger.Logger) *AutomationService {
	return &AutomationService{logger: logger}
}

func (s *AutomationService) HandleDeliveryEvent(ctx context.Context, event *domain.DeliveryEvent) error {
	// Each dispatch gets its own trigger id so redeliveries of the same
	// event remain distinguishable downstream.
	s.logger.WithFields(map[string]interface{}{
		"trigger_id":      uuid.New().String(),
		"event_id":        event.ID,
		"event_type":      string(event.EventType),
		"organization_id": event.OrganizationID,
		"campaign_id":     event.CampaignID,
	}).Debug("Automation trigger for delivery event")

	return nil
}
