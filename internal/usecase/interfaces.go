package usecase

import (
	"context"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

// PaymentGateway é o processador (PayEvo).
type PaymentGateway interface {
	Configured() bool
	CreateTransaction(ctx context.Context, input entity.ChargeRequest) (*entity.ChargeResult, error)
	GetTransaction(ctx context.Context, transactionID string) (*entity.TransactionSnapshot, error)
}

// ChargeCreator é o que o Wizard chama ao gerar o PIX.
type ChargeCreator interface {
	CreateCharge(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error)
}

// PaymentChecker é o que o polling chama a cada intervalo.
type PaymentChecker interface {
	Execute(ctx context.Context, transactionID string) (*PaymentStatusOutput, error)
}

type WebhookJournal interface {
	Record(ctx context.Context, event *entity.WebhookEvent) error
}

type QueueProducerInterface interface {
	PublishEnrollment(ctx context.Context, payload queue.EnrollmentPayload) error
}
