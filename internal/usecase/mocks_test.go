package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

type MockChargeCreator struct {
	mock.Mock
}

func (m *MockChargeCreator) CreateCharge(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChargeResult), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockPaymentGateway) CreateTransaction(ctx context.Context, input entity.ChargeRequest) (*entity.ChargeResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChargeResult), args.Error(1)
}

func (m *MockPaymentGateway) GetTransaction(ctx context.Context, transactionID string) (*entity.TransactionSnapshot, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TransactionSnapshot), args.Error(1)
}

type MockWebhookJournal struct {
	mock.Mock
}

func (m *MockWebhookJournal) Record(ctx context.Context, event *entity.WebhookEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishEnrollment(ctx context.Context, payload queue.EnrollmentPayload) error {
	return m.Called(ctx, payload).Error(0)
}
