package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

func watchCmd(flags *globalFlags) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [transactionId]",
		Short: "Acompanha o status de uma transação até ela ser paga ou recusada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			checker := usecase.NewCheckPaymentUseCase(a.gateway, a.logger)
			return runWatch(ctx, cmd.OutOrStdout(), checker, args[0], interval)
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", usecase.DefaultPollInterval, "intervalo entre consultas")
	return cmd
}

func runWatch(ctx context.Context, out io.Writer, checker usecase.PaymentChecker, transactionID string, interval time.Duration) error {
	last, err := usecase.PollPayment(ctx, checker, transactionID, usecase.PollOptions{
		Interval: interval,
		OnUpdate: func(s *usecase.PaymentStatusOutput) {
			fmt.Fprintf(out, "%s  %-16s %s\n", time.Now().Format("15:04:05"), s.Status, s.Outcome())
		},
		OnError: func(err error) {
			fmt.Fprintf(out, "%s  erro: %v\n", time.Now().Format("15:04:05"), err)
		},
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	switch last.Outcome() {
	case entity.OutcomePaid:
		fmt.Fprintln(out, "Pagamento aprovado.")
	case entity.OutcomeFailed:
		return fmt.Errorf("pagamento não aprovado (%s)", last.Status)
	}
	return nil
}
