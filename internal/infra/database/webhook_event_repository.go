package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

const webhookEventsSchema = `
	CREATE TABLE IF NOT EXISTS webhook_events (
		id             UUID PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		status         TEXT NOT NULL,
		outcome        TEXT NOT NULL,
		amount         BIGINT NOT NULL DEFAULT 0,
		payload        JSONB,
		received_at    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_webhook_events_received_at ON webhook_events (received_at);
`

// WebhookEventRepository é o diário de entregas do webhook. Nada no checkout lê daqui.
type WebhookEventRepository struct {
	DB *sql.DB
}

var _ entity.WebhookEventRepository = (*WebhookEventRepository)(nil)

func NewWebhookEventRepository(db *sql.DB) *WebhookEventRepository {
	return &WebhookEventRepository{DB: db}
}

func (r *WebhookEventRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, webhookEventsSchema)
	return err
}

func (r *WebhookEventRepository) Record(ctx context.Context, e *entity.WebhookEvent) error {
	query := `
		INSERT INTO webhook_events (id, transaction_id, status, outcome, amount, payload, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.TransactionID,
		string(e.Status),
		string(e.Outcome),
		e.Amount,
		nullJSON(e.Payload),
		e.ReceivedAt,
	)
	return err
}

func (r *WebhookEventRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM webhook_events WHERE received_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullJSON(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	return &s
}
