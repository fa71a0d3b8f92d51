package domain

import "context"

//go:generate mockgen -destination mocks/mock_automation_service.go -package mocks github.com/sendsight/sendsight/internal/domain AutomationService

// AutomationService is the downstream hook invoked for every tracked
// event, regardless of type. Implementations trigger campaign automation
// flows (re-engagement, follow-ups) outside this subsystem.
type AutomationService interface {
	HandleDeliveryEvent(ctx context.Context, event *DeliveryEvent) error
}
