package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type MockEnrollmentMailer struct {
	mock.Mock
}

func (m *MockEnrollmentMailer) SendEnrollmentConfirmation(ctx context.Context, payload EnrollmentPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func delivery(ack amqp.Acknowledger, tag uint64, payload any) amqp.Delivery {
	body, _ := json.Marshal(payload)
	if raw, ok := payload.(string); ok {
		body = []byte(raw)
	}
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: body}
}

// ============ TESTES DO WORKER ============

func TestWorkerAcksAfterEmail(t *testing.T) {
	mailer := new(MockEnrollmentMailer)
	mailer.On("SendEnrollmentConfirmation", mock.Anything, mock.MatchedBy(func(p EnrollmentPayload) bool {
		return p.TransactionID == "tx_9" && p.CustomerEmail == "maria@example.com"
	})).Return(nil).Once()

	ack := &fakeAcknowledger{}
	w := NewWorker(nil, mailer, zap.NewNop())
	w.handleDelivery(context.Background(), delivery(ack, 1, EnrollmentPayload{TransactionID: "tx_9", CustomerEmail: "maria@example.com"}))

	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Empty(t, ack.nacked)
	mailer.AssertExpectations(t)
}

func TestWorkerNacksInvalidJSON(t *testing.T) {
	mailer := new(MockEnrollmentMailer)
	ack := &fakeAcknowledger{}

	NewWorker(nil, mailer, zap.NewNop()).handleDelivery(context.Background(), delivery(ack, 2, "{not json"))

	assert.Equal(t, []uint64{2}, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
	mailer.AssertNotCalled(t, "SendEnrollmentConfirmation", mock.Anything, mock.Anything)
}

func TestWorkerNacksWithoutEmail(t *testing.T) {
	mailer := new(MockEnrollmentMailer)
	ack := &fakeAcknowledger{}

	NewWorker(nil, mailer, zap.NewNop()).handleDelivery(context.Background(), delivery(ack, 3, EnrollmentPayload{TransactionID: "tx_9"}))

	assert.Equal(t, []uint64{3}, ack.nacked)
	mailer.AssertNotCalled(t, "SendEnrollmentConfirmation", mock.Anything, mock.Anything)
}

func TestWorkerNacksOnMailFailure(t *testing.T) {
	mailer := new(MockEnrollmentMailer)
	mailer.On("SendEnrollmentConfirmation", mock.Anything, mock.Anything).Return(errors.New("smtp 554"))
	ack := &fakeAcknowledger{}

	NewWorker(nil, mailer, zap.NewNop()).handleDelivery(context.Background(), delivery(ack, 4, EnrollmentPayload{CustomerEmail: "maria@example.com"}))

	assert.Equal(t, []uint64{4}, ack.nacked)
	assert.Equal(t, []bool{false}, ack.requeue)
	assert.Empty(t, ack.acked)
}

func TestWorkerConsumeStopsWhenChannelCloses(t *testing.T) {
	mailer := new(MockEnrollmentMailer)
	mailer.On("SendEnrollmentConfirmation", mock.Anything, mock.Anything).Return(nil)
	ack := &fakeAcknowledger{}

	msgs := make(chan amqp.Delivery, 2)
	msgs <- delivery(ack, 1, EnrollmentPayload{CustomerEmail: "a@example.com"})
	msgs <- delivery(ack, 2, EnrollmentPayload{CustomerEmail: "b@example.com"})
	close(msgs)

	done := make(chan struct{})
	go func() {
		NewWorker(nil, mailer, zap.NewNop()).Consume(context.Background(), msgs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not return after channel close")
	}
	assert.Equal(t, []uint64{1, 2}, ack.acked)
}
