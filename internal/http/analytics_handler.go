package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

// AnalyticsHandler exposes the authenticated delivery analytics API.
type AnalyticsHandler struct {
	tracker domain.DeliveryTrackerService
	logger  logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(tracker domain.DeliveryTrackerService, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		tracker: tracker,
		logger:  logger,
	}
}

// RegisterRoutes registers the delivery analytics HTTP endpoints
func (h *AnalyticsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/delivery.analytics", http.HandlerFunc(h.handleAnalytics))
	mux.Handle("/api/delivery.realtimeStats", http.HandlerFunc(h.handleRealTimeStats))
	mux.Handle("/api/delivery.healthScore", http.HandlerFunc(h.handleHealthScore))
	mux.Handle("/api/delivery.export", http.HandlerFunc(h.handleExport))
	mux.Handle("/api/delivery.healthCheck", http.HandlerFunc(h.handleHealthCheck))
}

func (h *AnalyticsHandler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		WriteJSONError(w, "organization_id is required", http.StatusBadRequest)
		return
	}

	query := domain.AnalyticsQuery{
		CampaignID:  r.URL.Query().Get("campaign_id"),
		Granularity: r.URL.Query().Get("granularity"),
	}

	var err error
	if query.StartDate, err = parseDateParam(r, "start_date"); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if query.EndDate, err = parseDateParam(r, "end_date"); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	analytics, err := h.tracker.GetAnalytics(r.Context(), organizationID, query)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get delivery analytics")
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

func (h *AnalyticsHandler) handleRealTimeStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		WriteJSONError(w, "organization_id is required", http.StatusBadRequest)
		return
	}

	stats, err := h.tracker.GetRealTimeStats(r.Context(), organizationID, r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get real-time stats")
		WriteJSONError(w, "Failed to get real-time stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) handleHealthScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		WriteJSONError(w, "organization_id is required", http.StatusBadRequest)
		return
	}

	score, err := h.tracker.GetDeliveryHealthScore(r.Context(), organizationID, r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get delivery health score")
		WriteJSONError(w, "Failed to get delivery health score", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, score)
}

func (h *AnalyticsHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		WriteJSONError(w, "organization_id is required", http.StatusBadRequest)
		return
	}

	opts := domain.ExportOptions{
		CampaignID:      r.URL.Query().Get("campaign_id"),
		Format:          r.URL.Query().Get("format"),
		IncludeMetadata: r.URL.Query().Get("include_metadata") == "true",
	}
	if opts.Format == "" {
		opts.Format = domain.ExportFormatJSON
	}

	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !startDate.IsZero() {
		opts.StartDate = &startDate
	}

	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !endDate.IsZero() {
		opts.EndDate = &endDate
	}

	payload, err := h.tracker.ExportDeliveryData(r.Context(), organizationID, opts)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to export delivery data")
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if opts.Format == domain.ExportFormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="delivery_events.csv"`)
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

func (h *AnalyticsHandler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := h.tracker.HealthCheck(r.Context())

	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, status)
}

// parseDateParam parses an RFC 3339 query parameter, returning the zero
// time when the parameter is absent.
func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: must be RFC 3339", name)
	}

	return parsed, nil
}
