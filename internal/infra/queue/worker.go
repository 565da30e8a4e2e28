package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EnrollmentMailer envia a confirmação de matrícula ao aluno.
type EnrollmentMailer interface {
	SendEnrollmentConfirmation(ctx context.Context, payload EnrollmentPayload) error
}

var errMissingEmail = errors.New("payload sem email do aluno")

type Worker struct {
	Channel *amqp.Channel
	Mailer  EnrollmentMailer
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, mailer EnrollmentMailer, logger *zap.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
		Logger:  logger,
	}
}

// Start consome a fila até o contexto ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName,
		"",    // consumer
		false, // auto-ack: o ack é manual
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info("worker aguardando na fila", zap.String("queue", queueName))
	w.Consume(ctx, msgs)
	return nil
}

func (w *Worker) Consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("worker encerrado")
			return
		case d, ok := <-msgs:
			if !ok {
				w.Logger.Warn("canal de entregas fechado")
				return
			}
			w.handleDelivery(ctx, d)
		}
	}
}

// handleDelivery: não há requeue. Payload podre ou falha de envio vão para a DLQ.
func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var payload EnrollmentPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.Logger.Error("JSON inválido na fila", zap.Error(err))
		d.Nack(false, false)
		return
	}

	log := w.Logger.With(zap.String("transaction_id", payload.TransactionID))

	if err := w.process(ctx, payload); err != nil {
		log.Error("falha ao confirmar matrícula", zap.Error(err))
		d.Nack(false, false)
		return
	}

	log.Info("matrícula confirmada", zap.String("email", payload.CustomerEmail))
	d.Ack(false)
}

func (w *Worker) process(ctx context.Context, payload EnrollmentPayload) error {
	if payload.CustomerEmail == "" {
		return errMissingEmail
	}
	return w.Mailer.SendEnrollmentConfirmation(ctx, payload)
}
