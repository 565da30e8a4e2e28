package entity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebhookEvent é uma entrega do processador, registrada como veio.
type WebhookEvent struct {
	ID            string            `json:"id"`
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	Outcome       Outcome           `json:"outcome"`
	Amount        int64             `json:"amount"`
	Payload       json.RawMessage   `json:"payload"`
	ReceivedAt    time.Time         `json:"received_at"`
}

func NewWebhookEvent(transactionID string, status TransactionStatus, amount int64, payload json.RawMessage) *WebhookEvent {
	return &WebhookEvent{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		Status:        status,
		Outcome:       status.Classify(),
		Amount:        amount,
		Payload:       payload,
		ReceivedAt:    time.Now(),
	}
}

type WebhookEventRepository interface {
	Record(ctx context.Context, event *WebhookEvent) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
