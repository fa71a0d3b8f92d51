package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/internal/domain/mocks"
	pkgmocks "github.com/sendsight/sendsight/pkg/mocks"
)

func setupAnalyticsHandlerTest(t *testing.T) (*mocks.MockDeliveryTrackerService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tracker := mocks.NewMockDeliveryTrackerService(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	mux := http.NewServeMux()
	NewAnalyticsHandler(tracker, log).RegisterRoutes(mux)

	return tracker, mux
}

func TestAnalyticsEndpoint(t *testing.T) {
	t.Run("returns report", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().GetAnalytics(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, query domain.AnalyticsQuery) (*domain.DeliveryAnalytics, error) {
				assert.Equal(t, "camp-1", query.CampaignID)
				assert.Equal(t, "hour", query.Granularity)
				return &domain.DeliveryAnalytics{OrganizationID: "org-1", Granularity: "hour"}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.analytics?organization_id=org-1&campaign_id=camp-1&granularity=hour", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var analytics domain.DeliveryAnalytics
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
		assert.Equal(t, "org-1", analytics.OrganizationID)
	})

	t.Run("parses RFC 3339 dates", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().GetAnalytics(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, query domain.AnalyticsQuery) (*domain.DeliveryAnalytics, error) {
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), query.StartDate)
				return &domain.DeliveryAnalytics{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.analytics?organization_id=org-1&start_date=2025-03-01T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		_, mux := setupAnalyticsHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.analytics?organization_id=org-1&start_date=yesterday", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires organization", func(t *testing.T) {
		_, mux := setupAnalyticsHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.analytics", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRealTimeStatsEndpoint(t *testing.T) {
	tracker, mux := setupAnalyticsHandlerTest(t)

	tracker.EXPECT().GetRealTimeStats(gomock.Any(), "org-1", "").
		Return(&domain.RealTimeStats{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/delivery.realtimeStats?organization_id=org-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthScoreEndpoint(t *testing.T) {
	tracker, mux := setupAnalyticsHandlerTest(t)

	tracker.EXPECT().GetDeliveryHealthScore(gomock.Any(), "org-1", "camp-1").
		Return(&domain.HealthScore{Score: 90, Recommendations: []string{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/delivery.healthScore?organization_id=org-1&campaign_id=camp-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var score domain.HealthScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, 90, score.Score)
	assert.NotNil(t, score.Recommendations)
}

func TestExportEndpoint(t *testing.T) {
	t.Run("csv sets download headers", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().ExportDeliveryData(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, opts domain.ExportOptions) (string, error) {
				assert.Equal(t, domain.ExportFormatCSV, opts.Format)
				return "id,email_id\n", nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.export?organization_id=org-1&format=csv", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	})

	t.Run("defaults to json", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().ExportDeliveryData(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, opts domain.ExportOptions) (string, error) {
				assert.Equal(t, domain.ExportFormatJSON, opts.Format)
				return "[]", nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.export?organization_id=org-1", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().HealthCheck(gomock.Any()).
			Return(&domain.HealthStatus{Healthy: true, Database: true, Redis: true})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.healthCheck", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		tracker, mux := setupAnalyticsHandlerTest(t)

		tracker.EXPECT().HealthCheck(gomock.Any()).
			Return(&domain.HealthStatus{Healthy: false, Database: true, Redis: false})

		req := httptest.NewRequest(http.MethodGet, "/api/delivery.healthCheck", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
