package usecase

import (
	"context"
	"time"
)

const DefaultPollInterval = 3 * time.Second

type PollOptions struct {
	Interval time.Duration
	OnUpdate func(*PaymentStatusOutput)
	// OnError recebe falhas transitórias; o polling continua no próximo intervalo.
	OnError func(error)
}

// PollPayment repete a consulta em intervalo fixo até um status terminal (PAID ou FAILED)
// ou até o contexto ser cancelado. Não existe limite de tentativas.
func PollPayment(ctx context.Context, checker PaymentChecker, transactionID string, opts PollOptions) (*PaymentStatusOutput, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *PaymentStatusOutput
	for {
		out, err := checker.Execute(ctx, transactionID)
		switch {
		case err == nil:
			last = out
			if opts.OnUpdate != nil {
				opts.OnUpdate(out)
			}
			if out.Outcome().Terminal() {
				return out, nil
			}
		case IsDomainError(err) || IsConfigurationError(err):
			return last, err
		default:
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}
