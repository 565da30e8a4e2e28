package database

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

// Precisa de um Postgres de verdade: TEST_DATABASE_URL=postgres://... go test ./internal/infra/database
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL não definida")
	}

	db, err := NewDBConnection(url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWebhookEventRepositoryRecordAndPrune(t *testing.T) {
	db := openTestDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	old := entity.NewWebhookEvent("tx_old", entity.StatusPaid, 78070, []byte(`{"id":"tx_old","status":"paid"}`))
	old.ReceivedAt = time.Now().Add(-48 * time.Hour)
	recent := entity.NewWebhookEvent("tx_new", entity.StatusPending, 0, nil)

	require.NoError(t, repo.Record(ctx, old))
	require.NoError(t, repo.Record(ctx, recent))
	t.Cleanup(func() {
		db.Exec(`DELETE FROM webhook_events WHERE id = ANY($1::uuid[])`, "{"+old.ID+","+recent.ID+"}")
	})

	var outcome string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT outcome FROM webhook_events WHERE id = $1`, old.ID).Scan(&outcome))
	assert.Equal(t, string(entity.OutcomePaid), outcome)

	pruned, err := repo.PruneBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pruned, int64(1))

	var remaining int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM webhook_events WHERE id = $1`, recent.ID).Scan(&remaining))
	assert.Equal(t, 1, remaining)
}

func TestNullJSON(t *testing.T) {
	assert.Nil(t, nullJSON(nil))
	got := nullJSON([]byte(`{}`))
	require.NotNil(t, got)
	assert.Equal(t, "{}", *got)
}
