package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

const (
	analyticsCacheTTL = 5 * time.Minute
	realtimeCacheTTL  = time.Minute

	// exportMaxRows caps one export so a single call cannot drag an
	// unbounded result set through memory.
	exportMaxRows = 50000

	defaultRetentionDays = 90
)

// DeliveryTrackerService records canonical delivery events and serves all
// derived analytics over them.
type DeliveryTrackerService struct {
	eventRepo   domain.DeliveryEventRepository
	counterRepo domain.DeliveryCounterRepository
	contactRepo domain.ContactRepository
	automation  domain.AutomationService
	logger      logger.Logger

	trackedOps int64
	failedOps  int64

	now func() time.Time
}

// NewDeliveryTrackerService creates a new DeliveryTrackerService.
func NewDeliveryTrackerService(
	eventRepo domain.DeliveryEventRepository,
	counterRepo domain.DeliveryCounterRepository,
	contactRepo domain.ContactRepository,
	automation domain.AutomationService,
	logger logger.Logger,
) *DeliveryTrackerService {
	return &DeliveryTrackerService{
		eventRepo:   eventRepo,
		counterRepo: counterRepo,
		contactRepo: contactRepo,
		automation:  automation,
		logger:      logger,
		now:         time.Now,
	}
}

// TrackEvent finalizes and records one canonical event. Every step is
// best-effort: a failed step is logged and counted, and the remaining
// steps still run. Callers never see an error, so webhook ingestion keeps
// acknowledging providers while the tracking path is degraded.
func (s *DeliveryTrackerService) TrackEvent(ctx context.Context, event *domain.DeliveryEvent) {
	atomic.AddInt64(&s.trackedOps, 1)

	now := s.now().UTC()
	event.Timestamp = now
	event.ID = fmt.Sprintf("%s_%s_%d", event.EmailID, event.EventType, now.UnixMilli())

	if err := event.Validate(); err != nil {
		s.recordFailure("validate", event, err)
		return
	}

	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		s.recordFailure("persist", event, err)
	}

	if err := s.counterRepo.IncrementCounters(ctx, event); err != nil {
		s.recordFailure("counters", event, err)
	}

	s.applySideEffects(ctx, event)
}

func (s *DeliveryTrackerService) applySideEffects(ctx context.Context, event *domain.DeliveryEvent) {
	switch event.EventType {
	case domain.EventBounced:
		if err := s.contactRepo.UpdateStatus(ctx, event.OrganizationID, event.RecipientEmail, domain.ContactStatusBounced); err != nil {
			s.recordFailure("contact_status", event, err)
		}
	case domain.EventComplained:
		if err := s.contactRepo.UpdateStatus(ctx, event.OrganizationID, event.RecipientEmail, domain.ContactStatusComplained); err != nil {
			s.recordFailure("contact_status", event, err)
		}
	case domain.EventUnsubscribed:
		if err := s.contactRepo.MarkUnsubscribed(ctx, event.OrganizationID, event.RecipientEmail, event.Timestamp); err != nil {
			s.recordFailure("contact_status", event, err)
		}
	}

	if err := s.automation.HandleDeliveryEvent(ctx, event); err != nil {
		s.recordFailure("automation", event, err)
	}
}

func (s *DeliveryTrackerService) recordFailure(step string, event *domain.DeliveryEvent, err error) {
	atomic.AddInt64(&s.failedOps, 1)
	s.logger.WithFields(map[string]interface{}{
		"step":       step,
		"event_id":   event.ID,
		"event_type": string(event.EventType),
		"error":      err.Error(),
	}).Warn("Delivery event tracking step failed")
}

// FailedOperations returns the number of tracking steps that have failed
// since startup.
func (s *DeliveryTrackerService) FailedOperations() int64 {
	return atomic.LoadInt64(&s.failedOps)
}

// GetAnalytics returns the full analytics report for the query window,
// cached for five minutes per distinct query.
func (s *DeliveryTrackerService) GetAnalytics(ctx context.Context, organizationID string, query domain.AnalyticsQuery) (*domain.DeliveryAnalytics, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization_id is required")
	}
	if err := query.Normalize(s.now().UTC()); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("delivery:analytics:%s:%s:%d:%d:%s",
		organizationID, campaignOrAll(query.CampaignID),
		query.StartDate.Unix(), query.EndDate.Unix(), query.Granularity)

	var cached domain.DeliveryAnalytics
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	filter := domain.EventFilter{
		OrganizationID: organizationID,
		CampaignID:     query.CampaignID,
		StartDate:      &query.StartDate,
		EndDate:        &query.EndDate,
	}

	counts, err := s.eventRepo.CountByEventType(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute delivery metrics: %w", err)
	}

	trends, err := s.eventRepo.QueryTrends(ctx, filter, query.Granularity)
	if err != nil {
		return nil, fmt.Errorf("failed to compute delivery trends: %w", err)
	}

	breakdown, err := s.eventRepo.QueryBreakdown(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute delivery breakdown: %w", err)
	}

	analytics := &domain.DeliveryAnalytics{
		OrganizationID: organizationID,
		CampaignID:     query.CampaignID,
		StartDate:      query.StartDate,
		EndDate:        query.EndDate,
		Granularity:    query.Granularity,
		Metrics:        domain.ComputeMetrics(counts),
		Trends:         trends,
		Breakdown:      breakdown,
	}

	s.cacheStore(ctx, cacheKey, analytics, analyticsCacheTTL)

	return analytics, nil
}

// GetRealTimeStats returns metrics for the trailing hour, day, week and
// month, cached for one minute.
func (s *DeliveryTrackerService) GetRealTimeStats(ctx context.Context, organizationID, campaignID string) (*domain.RealTimeStats, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization_id is required")
	}

	cacheKey := fmt.Sprintf("delivery:realtime:%s:%s", organizationID, campaignOrAll(campaignID))

	var cached domain.RealTimeStats
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	now := s.now().UTC()
	stats := &domain.RealTimeStats{}
	windows := []struct {
		duration time.Duration
		target   *domain.DeliveryMetrics
	}{
		{time.Hour, &stats.LastHour},
		{24 * time.Hour, &stats.LastDay},
		{7 * 24 * time.Hour, &stats.LastWeek},
		{30 * 24 * time.Hour, &stats.LastMonth},
	}

	for _, window := range windows {
		start := now.Add(-window.duration)
		counts, err := s.eventRepo.CountByEventType(ctx, domain.EventFilter{
			OrganizationID: organizationID,
			CampaignID:     campaignID,
			StartDate:      &start,
			EndDate:        &now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to compute real-time stats: %w", err)
		}
		*window.target = domain.ComputeMetrics(counts)
	}

	s.cacheStore(ctx, cacheKey, stats, realtimeCacheTTL)

	return stats, nil
}

// GetDeliveryHealthScore scores deliverability over the trailing 30 days.
func (s *DeliveryTrackerService) GetDeliveryHealthScore(ctx context.Context, organizationID, campaignID string) (*domain.HealthScore, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization_id is required")
	}

	now := s.now().UTC()
	start := now.AddDate(0, 0, -30)

	counts, err := s.eventRepo.CountByEventType(ctx, domain.EventFilter{
		OrganizationID: organizationID,
		CampaignID:     campaignID,
		StartDate:      &start,
		EndDate:        &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute health score metrics: %w", err)
	}

	return domain.ComputeHealthScore(domain.ComputeMetrics(counts)), nil
}

// ExportDeliveryData serializes matching events as JSON or CSV, capped at
// 50000 rows.
func (s *DeliveryTrackerService) ExportDeliveryData(ctx context.Context, organizationID string, opts domain.ExportOptions) (string, error) {
	if organizationID == "" {
		return "", fmt.Errorf("organization_id is required")
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	events, err := s.eventRepo.ListEvents(ctx, domain.EventFilter{
		OrganizationID: organizationID,
		CampaignID:     opts.CampaignID,
		StartDate:      opts.StartDate,
		EndDate:        opts.EndDate,
	}, exportMaxRows)
	if err != nil {
		return "", fmt.Errorf("failed to list events for export: %w", err)
	}

	if opts.Format == domain.ExportFormatJSON {
		payload, err := json.Marshal(events)
		if err != nil {
			return "", fmt.Errorf("failed to marshal export: %w", err)
		}
		return string(payload), nil
	}

	return exportCSV(events, opts.IncludeMetadata)
}

func exportCSV(events []*domain.DeliveryEvent, includeMetadata bool) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"id", "email_id", "campaign_id", "organization_id", "recipient_email",
		"event_type", "timestamp", "provider", "message_id",
		"bounce_type", "complaint_type", "user_agent", "ip_address", "location",
	}
	if includeMetadata {
		header = append(header, "metadata")
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, event := range events {
		row := []string{
			event.ID, event.EmailID, event.CampaignID, event.OrganizationID, event.RecipientEmail,
			string(event.EventType), event.Timestamp.UTC().Format(time.RFC3339), event.Provider, event.MessageID,
			event.BounceType, event.ComplaintType, event.UserAgent, event.IPAddress, event.Location,
		}
		if includeMetadata {
			metadata := ""
			if event.Metadata != nil {
				payload, err := json.Marshal(event.Metadata)
				if err != nil {
					return "", fmt.Errorf("failed to marshal event metadata: %w", err)
				}
				metadata = string(payload)
			}
			row = append(row, metadata)
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return buf.String(), nil
}

// CleanupOldData purges events older than the retention window and
// returns the number purged.
func (s *DeliveryTrackerService) CleanupOldData(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}

	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	deleted, err := s.eventRepo.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old delivery events: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"deleted":        deleted,
		"retention_days": retentionDays,
	}).Info("Purged old delivery events")

	return deleted, nil
}

// HealthCheck probes the durable store and the cache and reports the
// internal tracking error rate.
func (s *DeliveryTrackerService) HealthCheck(ctx context.Context) *domain.HealthStatus {
	status := &domain.HealthStatus{}

	since := s.now().UTC().Add(-5 * time.Minute)
	recent, err := s.eventRepo.CountEventsSince(ctx, since)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Delivery health check: database probe failed")
	} else {
		status.Database = true
		status.RecentEvents = recent
	}

	if err := s.counterRepo.Ping(ctx); err != nil {
		s.logger.WithField("error", err.Error()).Error("Delivery health check: redis probe failed")
	} else {
		status.Redis = true
	}

	tracked := atomic.LoadInt64(&s.trackedOps)
	failed := atomic.LoadInt64(&s.failedOps)
	if tracked > 0 {
		status.ErrorRate = float64(failed) / float64(tracked) * 100
	}

	status.Healthy = status.Database && status.Redis

	return status
}

func (s *DeliveryTrackerService) cacheLookup(ctx context.Context, key string, target interface{}) bool {
	payload, err := s.counterRepo.CacheGet(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			s.logger.WithField("error", err.Error()).Warn("Analytics cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Analytics cache payload corrupt")
		return false
	}

	return true
}

func (s *DeliveryTrackerService) cacheStore(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("Analytics cache marshal failed")
		return
	}

	if err := s.counterRepo.CacheSet(ctx, key, payload, ttl); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Analytics cache write failed")
	}
}

func campaignOrAll(campaignID string) string {
	if campaignID == "" {
		return "all"
	}
	return campaignID
}
