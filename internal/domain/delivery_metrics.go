package domain

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// DeliveryMetrics is a point-in-time aggregate over a set of events.
// Rates are percentages in [0,100] and are 0 whenever the denominator
// count is 0.
type DeliveryMetrics struct {
	TotalSent         int64 `json:"total_sent"`
	TotalDelivered    int64 `json:"total_delivered"`
	TotalOpened       int64 `json:"total_opened"`
	TotalClicked      int64 `json:"total_clicked"`
	TotalBounced      int64 `json:"total_bounced"`
	TotalComplaints   int64 `json:"total_complaints"`
	TotalUnsubscribed int64 `json:"total_unsubscribed"`

	DeliveryRate    float64 `json:"delivery_rate"`
	OpenRate        float64 `json:"open_rate"`
	ClickRate       float64 `json:"click_rate"`
	BounceRate      float64 `json:"bounce_rate"`
	ComplaintRate   float64 `json:"complaint_rate"`
	UnsubscribeRate float64 `json:"unsubscribe_rate"`
}

// ComputeMetrics derives a DeliveryMetrics from per-type counts.
func ComputeMetrics(counts map[DeliveryEventType]int64) DeliveryMetrics {
	m := DeliveryMetrics{
		TotalSent:         counts[EventSent],
		TotalDelivered:    counts[EventDelivered],
		TotalOpened:       counts[EventOpened],
		TotalClicked:      counts[EventClicked],
		TotalBounced:      counts[EventBounced],
		TotalComplaints:   counts[EventComplained],
		TotalUnsubscribed: counts[EventUnsubscribed],
	}

	m.DeliveryRate = ratePercent(m.TotalDelivered, m.TotalSent)
	m.OpenRate = ratePercent(m.TotalOpened, m.TotalDelivered)
	m.ClickRate = ratePercent(m.TotalClicked, m.TotalOpened)
	m.BounceRate = ratePercent(m.TotalBounced, m.TotalSent)
	m.ComplaintRate = ratePercent(m.TotalComplaints, m.TotalDelivered)
	m.UnsubscribeRate = ratePercent(m.TotalUnsubscribed, m.TotalDelivered)

	return m
}

func ratePercent(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// RealTimeStats bundles metrics for four trailing windows relative to
// the moment of the call.
type RealTimeStats struct {
	LastHour  DeliveryMetrics `json:"last_hour"`
	LastDay   DeliveryMetrics `json:"last_day"`
	LastWeek  DeliveryMetrics `json:"last_week"`
	LastMonth DeliveryMetrics `json:"last_month"`
}

// TrendPoint is one bucket in a time-bucketed series.
type TrendPoint struct {
	Bucket    time.Time `json:"bucket"`
	Delivered int64     `json:"delivered"`
	Opened    int64     `json:"opened"`
	Clicked   int64     `json:"clicked"`
	Bounced   int64     `json:"bounced"`
}

// AnalyticsBreakdown groups event counts along several axes.
type AnalyticsBreakdown struct {
	ByProvider map[string]int64 `json:"by_provider"`
	ByHour     map[string]int64 `json:"by_hour"`
	ByDay      map[string]int64 `json:"by_day"`
	ByLocation map[string]int64 `json:"by_location"`
	ByDevice   map[string]int64 `json:"by_device"`
}

// DeliveryAnalytics is the full report for one analytics query.
type DeliveryAnalytics struct {
	OrganizationID string              `json:"organization_id"`
	CampaignID     string              `json:"campaign_id,omitempty"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	Granularity    string              `json:"granularity"`
	Metrics        DeliveryMetrics     `json:"metrics"`
	Trends         []TrendPoint        `json:"trends"`
	Breakdown      *AnalyticsBreakdown `json:"breakdown"`
}

// AnalyticsQuery defines the scope of a GetAnalytics call.
type AnalyticsQuery struct {
	CampaignID  string    `json:"campaign_id,omitempty"`
	StartDate   time.Time `json:"start_date,omitempty"`
	EndDate     time.Time `json:"end_date,omitempty"`
	Granularity string    `json:"granularity,omitempty"`
}

// Normalize applies defaults (trailing 30 days, day granularity) and
// validates the granularity.
func (q *AnalyticsQuery) Normalize(now time.Time) error {
	if q.EndDate.IsZero() {
		q.EndDate = now
	}
	if q.StartDate.IsZero() {
		q.StartDate = q.EndDate.AddDate(0, 0, -30)
	}
	if q.Granularity == "" {
		q.Granularity = "day"
	}
	if !govalidator.IsIn(q.Granularity, "hour", "day", "week", "month") {
		return fmt.Errorf("invalid granularity: %s", q.Granularity)
	}
	if q.StartDate.After(q.EndDate) {
		return fmt.Errorf("start_date must be before end_date")
	}
	return nil
}

// ExportFormat values accepted by ExportDeliveryData.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// ExportOptions defines the scope and shape of a data export.
type ExportOptions struct {
	CampaignID      string     `json:"campaign_id,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Format          string     `json:"format"`
	IncludeMetadata bool       `json:"include_metadata,omitempty"`
}

// Validate checks the export format.
func (o *ExportOptions) Validate() error {
	if !govalidator.IsIn(o.Format, ExportFormatJSON, ExportFormatCSV) {
		return fmt.Errorf("invalid export format: %s", o.Format)
	}
	return nil
}

// HealthStatus is the result of a tracker health probe.
type HealthStatus struct {
	Healthy      bool    `json:"healthy"`
	Database     bool    `json:"database"`
	Redis        bool    `json:"redis"`
	RecentEvents int64   `json:"recent_events"`
	ErrorRate    float64 `json:"error_rate"`
}
