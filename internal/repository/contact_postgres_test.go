package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sendsight/sendsight/internal/domain"
)

func TestContactUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts")).
		WithArgs("BOUNCED", sqlmock.AnyArg(), "org-1", "user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "org-1", "user@example.com", domain.ContactStatusBounced))

	t.Run("missing contact is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts")).
			WithArgs("COMPLAINED", sqlmock.AnyArg(), "org-1", "ghost@example.com").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.UpdateStatus(context.Background(), "org-1", "ghost@example.com", domain.ContactStatusComplained))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMarkUnsubscribed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(db)

	at := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts")).
		WithArgs("UNSUBSCRIBED", at, sqlmock.AnyArg(), "org-1", "user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkUnsubscribed(context.Background(), "org-1", "user@example.com", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
