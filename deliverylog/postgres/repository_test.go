//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Unit tests for the PostgreSQL delivery log repository.

These use sqlmock, so no real database or containers are needed.
Run with: go test ./deliverylog/postgres/...
*/

var logColumns = []string{"id", "webhook_id", "direction", "endpoint_url", "method", "headers", "body", "status_code", "response_body", "response_time_ms", "created_at"}

func TestRepository_Append_Unit(t *testing.T) {
	t.Run("outgoing entry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO webhook_logs`)).
			WithArgs("wh-1", "outgoing", "https://api.example.com", "POST", sqlmock.AnyArg(), `{"event":"x"}`, 200, "ok", int64(42)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Append(ctx, deliverylog.Entry{
			WebhookID:    "wh-1",
			Direction:    deliverylog.Outgoing,
			EndpointURL:  "https://api.example.com",
			Method:       "POST",
			Headers:      map[string]string{"Content-Type": "application/json"},
			Body:         `{"event":"x"}`,
			StatusCode:   200,
			ResponseBody: "ok",
			ResponseTime: 42,
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incoming entry stores a null endpoint url", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO webhook_logs`)).
			WithArgs("wh-1", "incoming", nil, "POST", sqlmock.AnyArg(), "body", 0, "", int64(0)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Append(ctx, deliverylog.Entry{
			WebhookID: "wh-1",
			Direction: deliverylog.Incoming,
			Method:    "POST",
			Body:      "body",
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List_Unit(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		rows := sqlmock.NewRows(logColumns).
			AddRow(2, "wh-1", "outgoing", "https://api.example.com", "POST", `{"Content-Type":"application/json"}`, "body", 200, "ok", 42, time.Now()).
			AddRow(1, "wh-1", "incoming", nil, "POST", "", "body", 0, "", 0, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(
			`FROM webhook_logs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		)).WithArgs(50, 0).WillReturnRows(rows)

		entries, err := repo.List(ctx, deliverylog.Filter{Limit: 50})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, deliverylog.Outgoing, entries[0].Direction)
		assert.Equal(t, "https://api.example.com", entries[0].EndpointURL)
		assert.Equal(t, map[string]string{"Content-Type": "application/json"}, entries[0].Headers)
		assert.Equal(t, deliverylog.Incoming, entries[1].Direction)
		assert.Empty(t, entries[1].EndpointURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("webhook id filter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(
			`FROM webhook_logs WHERE webhook_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		)).WithArgs("wh-1", 10, 0).WillReturnRows(sqlmock.NewRows(logColumns))

		_, err = repo.List(ctx, deliverylog.Filter{WebhookID: "wh-1", Limit: 10})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("combined filters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(
			`FROM webhook_logs WHERE webhook_id = $1 AND endpoint_url = $2 ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		)).WithArgs("wh-1", "https://api.example.com", 10, 5).WillReturnRows(sqlmock.NewRows(logColumns))

		_, err = repo.List(ctx, deliverylog.Filter{
			WebhookID:   "wh-1",
			EndpointURL: "https://api.example.com",
			Limit:       10,
			Skip:        5,
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteAll_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &Repository{DB: db}
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM webhook_logs`)).
		WillReturnResult(sqlmock.NewResult(0, 7))

	err = repo.DeleteAll(ctx)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
