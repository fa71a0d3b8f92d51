package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sendsight/sendsight/internal/domain"
)

type deliveryEventRepository struct {
	db *sql.DB
}

// NewDeliveryEventRepository creates a new PostgreSQL repository for
// delivery events.
func NewDeliveryEventRepository(db *sql.DB) domain.DeliveryEventRepository {
	return &deliveryEventRepository{db: db}
}

// deliveryEventModel is the database model for delivery events
type deliveryEventModel struct {
	ID             string    `db:"id"`
	EmailID        string    `db:"email_id"`
	CampaignID     string    `db:"campaign_id"`
	OrganizationID string    `db:"organization_id"`
	RecipientEmail string    `db:"recipient_email"`
	EventType      string    `db:"event_type"`
	Timestamp      time.Time `db:"timestamp"`
	Metadata       []byte    `db:"metadata"`
	Provider       string    `db:"provider"`
	MessageID      string    `db:"message_id"`
	BounceType     string    `db:"bounce_type"`
	ComplaintType  string    `db:"complaint_type"`
	UserAgent      string    `db:"user_agent"`
	IPAddress      string    `db:"ip_address"`
	Location       string    `db:"location"`
	CreatedAt      time.Time `db:"created_at"`
}

func (m *deliveryEventModel) toDomain() (*domain.DeliveryEvent, error) {
	event := &domain.DeliveryEvent{
		ID:             m.ID,
		EmailID:        m.EmailID,
		CampaignID:     m.CampaignID,
		OrganizationID: m.OrganizationID,
		RecipientEmail: m.RecipientEmail,
		EventType:      domain.DeliveryEventType(m.EventType),
		Timestamp:      m.Timestamp,
		Provider:       m.Provider,
		MessageID:      m.MessageID,
		BounceType:     m.BounceType,
		ComplaintType:  m.ComplaintType,
		UserAgent:      m.UserAgent,
		IPAddress:      m.IPAddress,
		Location:       m.Location,
	}

	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &event.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
		}
	}

	return event, nil
}

func eventToModel(e *domain.DeliveryEvent) (*deliveryEventModel, error) {
	model := &deliveryEventModel{
		ID:             e.ID,
		EmailID:        e.EmailID,
		CampaignID:     e.CampaignID,
		OrganizationID: e.OrganizationID,
		RecipientEmail: e.RecipientEmail,
		EventType:      string(e.EventType),
		Timestamp:      e.Timestamp,
		Provider:       e.Provider,
		MessageID:      e.MessageID,
		BounceType:     e.BounceType,
		ComplaintType:  e.ComplaintType,
		UserAgent:      e.UserAgent,
		IPAddress:      e.IPAddress,
		Location:       e.Location,
		CreatedAt:      time.Now().UTC(),
	}

	if e.Metadata != nil {
		payload, err := json.Marshal(e.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		model.Metadata = payload
	}

	return model, nil
}

// scanDeliveryEventModel scans a database row into a deliveryEventModel
func scanDeliveryEventModel(scanner interface {
	Scan(dest ...interface{}) error
}) (*deliveryEventModel, error) {
	var model deliveryEventModel
	err := scanner.Scan(
		&model.ID,
		&model.EmailID,
		&model.CampaignID,
		&model.OrganizationID,
		&model.RecipientEmail,
		&model.EventType,
		&model.Timestamp,
		&model.Metadata,
		&model.Provider,
		&model.MessageID,
		&model.BounceType,
		&model.ComplaintType,
		&model.UserAgent,
		&model.IPAddress,
		&model.Location,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *deliveryEventRepository) InsertEvent(ctx context.Context, event *domain.DeliveryEvent) error {
	model, err := eventToModel(event)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO delivery_events (
			id, email_id, campaign_id, organization_id, recipient_email,
			event_type, timestamp, metadata, provider, message_id,
			bounce_type, complaint_type, user_agent, ip_address, location,
			created_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		model.ID, model.EmailID, model.CampaignID, model.OrganizationID, model.RecipientEmail,
		model.EventType, model.Timestamp, model.Metadata, model.Provider, model.MessageID,
		model.BounceType, model.ComplaintType, model.UserAgent, model.IPAddress, model.Location,
		model.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert delivery event: %w", err)
	}

	return nil
}

// applyEventFilter adds the tenant scope and optional campaign/date
// predicates to a query builder.
func applyEventFilter(builder sq.SelectBuilder, filter domain.EventFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"organization_id": filter.OrganizationID})

	if filter.CampaignID != "" {
		builder = builder.Where(sq.Eq{"campaign_id": filter.CampaignID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"timestamp": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"timestamp": *filter.EndDate})
	}

	return builder
}

func (r *deliveryEventRepository) CountByEventType(ctx context.Context, filter domain.EventFilter) (map[domain.DeliveryEventType]int64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := applyEventFilter(psql.Select("event_type", "COUNT(*)").From("delivery_events"), filter).
		GroupBy("event_type")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count events by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.DeliveryEventType]int64)
	for rows.Next() {
		var eventType string
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count row: %w", err)
		}
		counts[domain.DeliveryEventType(eventType)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating through event counts: %w", err)
	}

	return counts, nil
}

// trendTruncations maps query granularities to date_trunc fields. The
// granularity is never interpolated without passing through this map.
var trendTruncations = map[string]string{
	"hour":  "hour",
	"day":   "day",
	"week":  "week",
	"month": "month",
}

func (r *deliveryEventRepository) QueryTrends(ctx context.Context, filter domain.EventFilter, granularity string) ([]domain.TrendPoint, error) {
	truncation, ok := trendTruncations[granularity]
	if !ok {
		return nil, fmt.Errorf("invalid granularity: %s", granularity)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := applyEventFilter(psql.Select(
		fmt.Sprintf("date_trunc('%s', timestamp) AS bucket", truncation),
		"COUNT(*) FILTER (WHERE event_type = 'delivered') AS delivered",
		"COUNT(*) FILTER (WHERE event_type = 'opened') AS opened",
		"COUNT(*) FILTER (WHERE event_type = 'clicked') AS clicked",
		"COUNT(*) FILTER (WHERE event_type = 'bounced') AS bounced",
	).From("delivery_events"), filter).
		GroupBy("bucket").
		OrderBy("bucket ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build trends query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery trends: %w", err)
	}
	defer rows.Close()

	var trends []domain.TrendPoint
	for rows.Next() {
		var point domain.TrendPoint
		if err := rows.Scan(&point.Bucket, &point.Delivered, &point.Opened, &point.Clicked, &point.Bounced); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		trends = append(trends, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating through trend rows: %w", err)
	}

	return trends, nil
}

func (r *deliveryEventRepository) QueryBreakdown(ctx context.Context, filter domain.EventFilter) (*domain.AnalyticsBreakdown, error) {
	breakdown := &domain.AnalyticsBreakdown{
		ByProvider: make(map[string]int64),
		ByHour:     make(map[string]int64),
		ByDay:      make(map[string]int64),
		ByLocation: make(map[string]int64),
		ByDevice:   make(map[string]int64),
	}

	axes := []struct {
		expression string
		target     map[string]int64
	}{
		{"COALESCE(NULLIF(provider, ''), 'unknown')", breakdown.ByProvider},
		{"to_char(timestamp, 'HH24')", breakdown.ByHour},
		{"to_char(timestamp, 'YYYY-MM-DD')", breakdown.ByDay},
		{"COALESCE(NULLIF(location, ''), 'unknown')", breakdown.ByLocation},
		{deviceExpression, breakdown.ByDevice},
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	for _, axis := range axes {
		builder := applyEventFilter(psql.Select(axis.expression+" AS axis", "COUNT(*)").From("delivery_events"), filter).
			GroupBy("axis")

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build breakdown query: %w", err)
		}

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query event breakdown: %w", err)
		}

		for rows.Next() {
			var key string
			var count int64
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
			}
			axis.target[key] = count
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error while iterating through breakdown rows: %w", err)
		}
		rows.Close()
	}

	return breakdown, nil
}

// deviceExpression classifies the recorded user agent. Only open and
// click events carry one, so other events land in "unknown".
const deviceExpression = `CASE
		WHEN user_agent ILIKE '%mobile%' OR user_agent ILIKE '%android%' OR user_agent ILIKE '%iphone%' THEN 'mobile'
		WHEN user_agent ILIKE '%tablet%' OR user_agent ILIKE '%ipad%' THEN 'tablet'
		WHEN user_agent = '' THEN 'unknown'
		ELSE 'desktop'
	END`

func (r *deliveryEventRepository) ListEvents(ctx context.Context, filter domain.EventFilter, limit int) ([]*domain.DeliveryEvent, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := applyEventFilter(psql.Select(
		"id", "email_id", "campaign_id", "organization_id", "recipient_email",
		"event_type", "timestamp", "metadata", "provider", "message_id",
		"bounce_type", "complaint_type", "user_agent", "ip_address", "location",
		"created_at",
	).From("delivery_events"), filter).
		OrderBy("timestamp DESC").
		Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery events: %w", err)
	}
	defer rows.Close()

	var events []*domain.DeliveryEvent
	for rows.Next() {
		model, err := scanDeliveryEventModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery event row: %w", err)
		}

		event, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating through delivery events: %w", err)
	}

	return events, nil
}

func (r *deliveryEventRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM delivery_events WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old delivery events: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}

	return deleted, nil
}

func (r *deliveryEventRepository) CountEventsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM delivery_events WHERE timestamp >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent delivery events: %w", err)
	}

	return count, nil
}
