package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendsight/sendsight/internal/domain"
)

func setupEventRepoTest(t *testing.T) (domain.DeliveryEventRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDeliveryEventRepository(db), mock
}

func TestInsertEvent(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	event := &domain.DeliveryEvent{
		ID:             "email-1_delivered_1742034600000",
		EmailID:        "email-1",
		CampaignID:     "camp-1",
		OrganizationID: "org-1",
		RecipientEmail: "user@example.com",
		EventType:      domain.EventDelivered,
		Timestamp:      time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		Provider:       "sendgrid",
		MessageID:      "msg-1",
		Metadata:       map[string]interface{}{"reason": "250 ok"},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO delivery_events")).
		WithArgs(
			event.ID, event.EmailID, event.CampaignID, event.OrganizationID, event.RecipientEmail,
			"delivered", event.Timestamp, []byte(`{"reason":"250 ok"}`), "sendgrid", "msg-1",
			"", "", "", "", "", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertEvent(context.Background(), event))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByEventType(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT event_type, COUNT(*) FROM delivery_events WHERE organization_id = $1 AND campaign_id = $2 AND timestamp >= $3 AND timestamp <= $4 GROUP BY event_type",
	)).
		WithArgs("org-1", "camp-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "count"}).
			AddRow("sent", 100).
			AddRow("delivered", 95).
			AddRow("bounced", 5))

	counts, err := repo.CountByEventType(context.Background(), domain.EventFilter{
		OrganizationID: "org-1",
		CampaignID:     "camp-1",
		StartDate:      &start,
		EndDate:        &end,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), counts[domain.EventSent])
	assert.Equal(t, int64(95), counts[domain.EventDelivered])
	assert.Equal(t, int64(5), counts[domain.EventBounced])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryTrends(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	bucket := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("date_trunc('day', timestamp) AS bucket")).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "delivered", "opened", "clicked", "bounced"}).
			AddRow(bucket, 95, 40, 10, 5))

	trends, err := repo.QueryTrends(context.Background(), domain.EventFilter{OrganizationID: "org-1"}, "day")
	require.NoError(t, err)

	require.Len(t, trends, 1)
	assert.Equal(t, bucket, trends[0].Bucket)
	assert.Equal(t, int64(95), trends[0].Delivered)
	assert.Equal(t, int64(5), trends[0].Bounced)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryTrends_InvalidGranularity(t *testing.T) {
	repo, _ := setupEventRepoTest(t)

	_, err := repo.QueryTrends(context.Background(), domain.EventFilter{OrganizationID: "org-1"}, "decade")
	require.Error(t, err)
}

func TestListEvents(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	at := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "email_id", "campaign_id", "organization_id", "recipient_email",
		"event_type", "timestamp", "metadata", "provider", "message_id",
		"bounce_type", "complaint_type", "user_agent", "ip_address", "location",
		"created_at",
	}).AddRow(
		"email-1_opened_1", "email-1", "camp-1", "org-1", "user@example.com",
		"opened", at, []byte(`{"url":"https://example.com"}`), "sendgrid", "msg-1",
		"", "", "Mozilla/5.0", "1.2.3.4", "US",
		at,
	)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp DESC LIMIT 100")).
		WithArgs("org-1").
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), domain.EventFilter{OrganizationID: "org-1"}, 100)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventOpened, events[0].EventType)
	assert.Equal(t, "https://example.com", events[0].Metadata["url"])
	assert.Equal(t, "Mozilla/5.0", events[0].UserAgent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEventsBefore(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	cutoff := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM delivery_events WHERE timestamp < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 1234))

	deleted, err := repo.DeleteEventsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEventsSince(t *testing.T) {
	repo, mock := setupEventRepoTest(t)

	since := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM delivery_events WHERE timestamp >= $1")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))

	count, err := repo.CountEventsSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(57), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
