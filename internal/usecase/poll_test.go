package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

// scriptedChecker devolve uma resposta por chamada; a última se repete.
type scriptedChecker struct {
	mu      sync.Mutex
	calls   int
	results []scriptedResult
}

type scriptedResult struct {
	status entity.TransactionStatus
	err    error
}

func (c *scriptedChecker) Execute(_ context.Context, id string) (*PaymentStatusOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.results[min(c.calls, len(c.results)-1)]
	c.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &PaymentStatusOutput{TransactionID: id, Status: r.status, IsPaid: r.status.IsPaid()}, nil
}

func TestPollPaymentStopsWhenPaid(t *testing.T) {
	checker := &scriptedChecker{results: []scriptedResult{
		{status: entity.StatusPending},
		{err: errors.New("502 da PayEvo")},
		{status: "in_analysis"},
		{status: entity.StatusPaid},
	}}

	var seen []entity.TransactionStatus
	var errs int
	out, err := PollPayment(context.Background(), checker, "tx_1", PollOptions{
		Interval: time.Millisecond,
		OnUpdate: func(s *PaymentStatusOutput) { seen = append(seen, s.Status) },
		OnError:  func(error) { errs++ },
	})

	require.NoError(t, err)
	assert.True(t, out.IsPaid)
	assert.Equal(t, []entity.TransactionStatus{"pending", "in_analysis", "paid"}, seen)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 4, checker.calls)
}

func TestPollPaymentStopsWhenFailed(t *testing.T) {
	checker := &scriptedChecker{results: []scriptedResult{{status: entity.StatusCanceled}}}

	out, err := PollPayment(context.Background(), checker, "tx_1", PollOptions{Interval: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeFailed, out.Outcome())
	assert.Equal(t, 1, checker.calls)
}

func TestPollPaymentStopsOnDomainError(t *testing.T) {
	checker := &scriptedChecker{results: []scriptedResult{{err: &ConfigurationError{Key: SecretKeyEnv}}}}

	_, err := PollPayment(context.Background(), checker, "tx_1", PollOptions{Interval: time.Millisecond})

	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, 1, checker.calls)
}

func TestPollPaymentCancelled(t *testing.T) {
	checker := &scriptedChecker{results: []scriptedResult{{status: entity.StatusWaitingPayment}}}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	last, err := PollPayment(ctx, checker, "tx_1", PollOptions{Interval: 5 * time.Millisecond})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, last)
	assert.Equal(t, entity.StatusWaitingPayment, last.Status)
	assert.Greater(t, checker.calls, 1)
}
