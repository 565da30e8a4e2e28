package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

const SecretKeyEnv = "PAYEVO_SECRET_KEY"

type CreateChargeUseCase struct {
	Gateway PaymentGateway
	Logger  *zap.Logger
	now     func() time.Time
}

func NewCreateChargeUseCase(gateway PaymentGateway, logger *zap.Logger) *CreateChargeUseCase {
	return &CreateChargeUseCase{
		Gateway: gateway,
		Logger:  logger,
		now:     time.Now,
	}
}

// Execute: configuração, depois formato, depois rede. Formato inválido nunca chega à PayEvo.
func (uc *CreateChargeUseCase) Execute(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error) {
	if !uc.Gateway.Configured() {
		uc.Logger.Error("secret key da PayEvo não configurada", zap.String("key", SecretKeyEnv))
		return nil, &ConfigurationError{Key: SecretKeyEnv}
	}

	if fields := ValidateChargeRequest(req); len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	uc.Logger.Info("enviando cobrança para PayEvo",
		zap.Int64("amount", req.Amount),
		zap.String("customer", req.Customer.Name),
		zap.String("email", req.Customer.Email),
	)

	result, err := uc.Gateway.CreateTransaction(ctx, req)
	if err != nil {
		uc.Logger.Error("erro ao gerar PIX", zap.Error(err))
		return nil, err
	}

	result.CreatedAt = uc.now().UTC()

	uc.Logger.Info("PIX gerado", zap.String("transaction_id", result.ID), zap.String("status", string(result.Status)))
	return result, nil
}

// CreateCharge permite que o Wizard use o caso de uso diretamente.
func (uc *CreateChargeUseCase) CreateCharge(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error) {
	return uc.Execute(ctx, req)
}
