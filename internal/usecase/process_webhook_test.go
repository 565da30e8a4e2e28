package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

// ============ TESTES DO WEBHOOK ============

func TestProcessWebhookClassifies(t *testing.T) {
	tests := []struct {
		status  entity.TransactionStatus
		outcome entity.Outcome
		message string
	}{
		{"paid", entity.OutcomePaid, "Webhook processado com sucesso"},
		{"authorized", entity.OutcomePaid, "Webhook processado com sucesso"},
		{"waiting_payment", entity.OutcomePending, "Pagamento pendente"},
		{"refused", entity.OutcomeFailed, "Pagamento não aprovado"},
		{"canceled", entity.OutcomeFailed, "Pagamento não aprovado"},
		{"chargeback", entity.OutcomeUnknown, "Status recebido"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			uc := NewProcessWebhookUseCase(nil, nil, "Biomedicina Hospitalar", zap.NewNop())

			out, err := uc.Execute(context.Background(), WebhookInput{ID: "tx_9", Status: tt.status})

			require.NoError(t, err)
			assert.Equal(t, tt.outcome, out.Outcome)
			assert.Equal(t, tt.message, out.Message)
			assert.Equal(t, "tx_9", out.TransactionID)
			assert.Equal(t, tt.outcome == entity.OutcomePaid, out.Processed)
		})
	}
}

func TestProcessWebhookRequiresIDAndStatus(t *testing.T) {
	uc := NewProcessWebhookUseCase(nil, nil, "", zap.NewNop())

	_, err := uc.Execute(context.Background(), WebhookInput{Status: "paid"})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "id", domainErr.Fields[0].Field)

	_, err = uc.Execute(context.Background(), WebhookInput{})
	require.ErrorAs(t, err, &domainErr)
	assert.Len(t, domainErr.Fields, 2)
}

func TestProcessWebhookPaidPublishesEnrollment(t *testing.T) {
	journal := new(MockWebhookJournal)
	journal.On("Record", mock.Anything, mock.MatchedBy(func(e *entity.WebhookEvent) bool {
		return e.TransactionID == "tx_9" && e.Outcome == entity.OutcomePaid && e.Amount == 78070
	})).Return(nil).Once()

	producer := new(MockQueueProducer)
	producer.On("PublishEnrollment", mock.Anything, mock.MatchedBy(func(p queue.EnrollmentPayload) bool {
		return p.TransactionID == "tx_9" &&
			p.CustomerEmail == "maria@example.com" &&
			p.CourseTitle == "Biomedicina Hospitalar" &&
			p.Amount == 78070 &&
			p.Origin == "WEBHOOK_PAYEVO"
	})).Return(nil).Once()

	uc := NewProcessWebhookUseCase(journal, producer, "Biomedicina Hospitalar", zap.NewNop())
	out, err := uc.Execute(context.Background(), WebhookInput{
		ID:       "tx_9",
		Status:   "paid",
		Amount:   "78070",
		Customer: &WebhookCustomer{Name: "Maria Silva", Email: "maria@example.com"},
		Raw:      []byte(`{"id":"tx_9","status":"paid","amount":78070}`),
	})

	require.NoError(t, err)
	assert.True(t, out.Processed)
	journal.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestProcessWebhookPendingDoesNotPublish(t *testing.T) {
	journal := new(MockWebhookJournal)
	journal.On("Record", mock.Anything, mock.Anything).Return(nil)
	producer := new(MockQueueProducer)

	uc := NewProcessWebhookUseCase(journal, producer, "", zap.NewNop())
	_, err := uc.Execute(context.Background(), WebhookInput{ID: "tx_9", Status: "pending"})

	require.NoError(t, err)
	producer.AssertNotCalled(t, "PublishEnrollment", mock.Anything, mock.Anything)
}

func TestProcessWebhookJournalFailure(t *testing.T) {
	journal := new(MockWebhookJournal)
	journal.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))

	uc := NewProcessWebhookUseCase(journal, nil, "", zap.NewNop())
	_, err := uc.Execute(context.Background(), WebhookInput{ID: "tx_9", Status: "refused"})

	var techErr *TechnicalError
	require.ErrorAs(t, err, &techErr)
	assert.Equal(t, "JOURNAL_ERROR", techErr.Code)
	assert.False(t, IsDomainError(err))
}

func TestProcessWebhookQueueFailure(t *testing.T) {
	producer := new(MockQueueProducer)
	producer.On("PublishEnrollment", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	uc := NewProcessWebhookUseCase(nil, producer, "", zap.NewNop())
	_, err := uc.Execute(context.Background(), WebhookInput{ID: "tx_9", Status: "approved"})

	var techErr *TechnicalError
	require.ErrorAs(t, err, &techErr)
	assert.Equal(t, "QUEUE_ERROR", techErr.Code)
}

func TestWebhookInputAmountMinor(t *testing.T) {
	assert.Equal(t, int64(78070), WebhookInput{Amount: "78070"}.AmountMinor())
	assert.Equal(t, int64(0), WebhookInput{}.AmountMinor())
	assert.Equal(t, int64(0), WebhookInput{Amount: "780.70"}.AmountMinor())
}
