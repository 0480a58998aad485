//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Integration tests against a real PostgreSQL container.

Run with: go test -tags=integration ./webhook/postgres/...
*/

func inbound(id string, createdAt time.Time) webhook.InboundWebhook {
	return webhook.InboundWebhook{
		ID:        id,
		Method:    "POST",
		Headers:   map[string]string{"Content-Type": "application/json"},
		Body:      `{"event":"order.created"}`,
		SourceIP:  "203.0.113.7",
		UserAgent: "stripe-webhooks/1.0",
		Status:    webhook.Pending,
		CreatedAt: createdAt,
	}
}

func TestPostgresRepository_StoreAndGet_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := CreateTestRepository(t, pgContainer.ConnStr)
	defer repo.Close(ctx)
	require.NoError(t, repo.CreateTable(ctx))

	stored := inbound("wh-1", time.Now().UTC())
	require.NoError(t, repo.Store(ctx, stored))

	loaded, err := repo.Get(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, stored.Body, loaded.Body)
	assert.Equal(t, stored.Headers, loaded.Headers)
	assert.Equal(t, webhook.Pending, loaded.Status)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, webhook.ErrNotFound)
}

func TestPostgresRepository_UpdateResult_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := CreateTestRepository(t, pgContainer.ConnStr)
	defer repo.Close(ctx)
	require.NoError(t, repo.CreateTable(ctx))

	require.NoError(t, repo.Store(ctx, inbound("wh-1", time.Now().UTC())))

	require.NoError(t, repo.UpdateResult(ctx, "wh-1", webhook.Completed, 201, `{"ok":true}`))

	loaded, err := repo.Get(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, webhook.Completed, loaded.Status)
	assert.Equal(t, 201, loaded.ResponseStatus)
	assert.Equal(t, `{"ok":true}`, loaded.ResponseBody)

	err = repo.UpdateResult(ctx, "missing", webhook.Failed, 0, "")
	assert.ErrorIs(t, err, webhook.ErrNotFound)
}

func TestPostgresRepository_ListByRange_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := CreateTestRepository(t, pgContainer.ConnStr)
	defer repo.Close(ctx)
	require.NoError(t, repo.CreateTable(ctx))

	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Store(ctx, inbound("wh-early", base.Add(1*time.Hour))))
	require.NoError(t, repo.Store(ctx, inbound("wh-late", base.Add(5*time.Hour))))
	require.NoError(t, repo.Store(ctx, inbound("wh-outside", base.Add(30*time.Hour))))

	// Boundaries are inclusive
	list, err := repo.ListByRange(ctx, base.Add(1*time.Hour), base.Add(5*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "wh-early", list[0].ID)
	assert.Equal(t, "wh-late", list[1].ID)
}

func TestPostgresRepository_DeleteAll_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := CreateTestRepository(t, pgContainer.ConnStr)
	defer repo.Close(ctx)
	require.NoError(t, repo.CreateTable(ctx))

	require.NoError(t, repo.Store(ctx, inbound("wh-1", time.Now().UTC())))
	require.NoError(t, repo.Store(ctx, inbound("wh-2", time.Now().UTC())))

	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
