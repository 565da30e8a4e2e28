package usecase

import (
	"encoding/json"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

type PaymentStatusOutput struct {
	TransactionID string                   `json:"transactionId"`
	Status        entity.TransactionStatus `json:"status"`
	IsPaid        bool                     `json:"isPaid"`
	Amount        int64                    `json:"amount"`
	Customer      json.RawMessage          `json:"customer,omitempty"`
	CreatedAt     string                   `json:"createdAt"`
	PaidAt        *string                  `json:"paidAt"`
}

func (o *PaymentStatusOutput) Outcome() entity.Outcome {
	return o.Status.Classify()
}

// WebhookInput é o corpo que a PayEvo envia. Só ID e Status são obrigatórios.
type WebhookInput struct {
	ID       string                   `json:"id"`
	Status   entity.TransactionStatus `json:"status"`
	Amount   json.Number              `json:"amount"`
	Customer *WebhookCustomer         `json:"customer"`
	Raw      json.RawMessage          `json:"-"`
}

// AmountMinor: valor em centavos; zero quando ausente ou ilegível.
func (in WebhookInput) AmountMinor() int64 {
	n, err := in.Amount.Int64()
	if err != nil {
		return 0
	}
	return n
}

type WebhookCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type WebhookOutput struct {
	TransactionID string
	Outcome       entity.Outcome
	Message       string
	// Processed vai na resposta como status:"processed" quando o pagamento foi aprovado.
	Processed bool
}
