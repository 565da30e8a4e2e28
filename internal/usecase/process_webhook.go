package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

var webhookMessages = map[entity.Outcome]string{
	entity.OutcomePaid:    "Webhook processado com sucesso",
	entity.OutcomePending: "Pagamento pendente",
	entity.OutcomeFailed:  "Pagamento não aprovado",
	entity.OutcomeUnknown: "Status recebido",
}

// ProcessWebhookUseCase classifica a notificação da PayEvo e dispara os efeitos opcionais
// (diário e fila de matrícula). Journal e Queue podem ser nil.
type ProcessWebhookUseCase struct {
	Journal     WebhookJournal
	Queue       QueueProducerInterface
	CourseTitle string
	Logger      *zap.Logger
}

func NewProcessWebhookUseCase(journal WebhookJournal, producer QueueProducerInterface, courseTitle string, logger *zap.Logger) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		Journal:     journal,
		Queue:       producer,
		CourseTitle: courseTitle,
		Logger:      logger,
	}
}

// Execute devolve DomainError só quando faltam id ou status. Qualquer outro erro é falha
// interna e o handler ainda responde 200.
func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, in WebhookInput) (*WebhookOutput, error) {
	var fields []ValidationError
	if strings.TrimSpace(in.ID) == "" {
		fields = append(fields, ValidationError{"id", "is required"})
	}
	if strings.TrimSpace(string(in.Status)) == "" {
		fields = append(fields, ValidationError{"status", "is required"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	outcome := in.Status.Classify()
	log := uc.Logger.With(
		zap.String("transaction_id", in.ID),
		zap.String("status", string(in.Status)),
		zap.String("outcome", string(outcome)),
	)
	log.Info("webhook recebido", zap.Int64("amount", in.AmountMinor()))

	if uc.Journal != nil {
		event := entity.NewWebhookEvent(in.ID, in.Status, in.AmountMinor(), in.Raw)
		if err := uc.Journal.Record(ctx, event); err != nil {
			return nil, &TechnicalError{Code: "JOURNAL_ERROR", Message: "falha ao registrar webhook", Err: err}
		}
	}

	if outcome == entity.OutcomePaid && uc.Queue != nil {
		if err := uc.Queue.PublishEnrollment(ctx, uc.enrollmentPayload(in)); err != nil {
			return nil, &TechnicalError{Code: "QUEUE_ERROR", Message: "falha ao publicar matrícula", Err: err}
		}
		log.Info("matrícula enviada para a fila")
	}

	if outcome == entity.OutcomeUnknown {
		log.Warn("status desconhecido")
	}

	return &WebhookOutput{
		TransactionID: in.ID,
		Outcome:       outcome,
		Message:       webhookMessages[outcome],
		Processed:     outcome == entity.OutcomePaid,
	}, nil
}

func (uc *ProcessWebhookUseCase) enrollmentPayload(in WebhookInput) queue.EnrollmentPayload {
	payload := queue.EnrollmentPayload{
		TransactionID: in.ID,
		Status:        string(in.Status),
		Amount:        in.AmountMinor(),
		CourseTitle:   uc.CourseTitle,
		Origin:        "WEBHOOK_PAYEVO",
		ConfirmedAt:   time.Now().UTC(),
	}
	if in.Customer != nil {
		payload.CustomerName = in.Customer.Name
		payload.CustomerEmail = in.Customer.Email
	}
	return payload
}
