package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type CheckPaymentUseCase struct {
	Gateway PaymentGateway
	Logger  *zap.Logger
}

func NewCheckPaymentUseCase(gateway PaymentGateway, logger *zap.Logger) *CheckPaymentUseCase {
	return &CheckPaymentUseCase{Gateway: gateway, Logger: logger}
}

// Execute é idempotente: o navegador chama a cada poucos segundos com o mesmo ID.
func (uc *CheckPaymentUseCase) Execute(ctx context.Context, transactionID string) (*PaymentStatusOutput, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, newValidationError([]ValidationError{{"transactionId", "is required"}})
	}

	if !uc.Gateway.Configured() {
		uc.Logger.Error("secret key da PayEvo não configurada", zap.String("key", SecretKeyEnv))
		return nil, &ConfigurationError{Key: SecretKeyEnv}
	}

	snapshot, err := uc.Gateway.GetTransaction(ctx, transactionID)
	if err != nil {
		uc.Logger.Error("erro ao consultar PayEvo", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, err
	}

	uc.Logger.Debug("status da transação",
		zap.String("transaction_id", snapshot.ID),
		zap.String("status", string(snapshot.Status)),
	)

	return &PaymentStatusOutput{
		TransactionID: snapshot.ID,
		Status:        snapshot.Status,
		IsPaid:        snapshot.Status.IsPaid(),
		Amount:        snapshot.Amount,
		Customer:      snapshot.Customer,
		CreatedAt:     snapshot.CreatedAt,
		PaidAt:        snapshot.PaidAt,
	}, nil
}
