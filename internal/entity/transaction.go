package entity

import (
	"encoding/json"
	"strings"
)

type TransactionStatus string

const (
	StatusPending        TransactionStatus = "pending"
	StatusWaitingPayment TransactionStatus = "waiting_payment"
	StatusPaid           TransactionStatus = "paid"
	StatusApproved       TransactionStatus = "approved"
	StatusAuthorized     TransactionStatus = "authorized"
	StatusRefused        TransactionStatus = "refused"
	StatusCanceled       TransactionStatus = "canceled"
	StatusFailed         TransactionStatus = "failed"
	StatusUnknown        TransactionStatus = "unknown"
)

// Outcome agrupa os status do processador no que importa para o checkout.
type Outcome string

const (
	OutcomePaid    Outcome = "PAID"
	OutcomePending Outcome = "PENDING"
	OutcomeFailed  Outcome = "FAILED"
	OutcomeUnknown Outcome = "UNKNOWN"
)

// Classify compara o literal exato enviado pelo processador.
func (s TransactionStatus) Classify() Outcome {
	switch s {
	case StatusPaid, StatusApproved, StatusAuthorized:
		return OutcomePaid
	case StatusPending, StatusWaitingPayment:
		return OutcomePending
	case StatusRefused, StatusCanceled, StatusFailed:
		return OutcomeFailed
	default:
		return OutcomeUnknown
	}
}

func (s TransactionStatus) IsPaid() bool {
	return s.Classify() == OutcomePaid
}

// Terminal: só PAID e FAILED encerram o polling. UNKNOWN continua.
func (o Outcome) Terminal() bool {
	return o == OutcomePaid || o == OutcomeFailed
}

func (o Outcome) Label() string {
	return strings.ToLower(string(o))
}

// TransactionSnapshot é o que o processador devolve na consulta de uma transação.
// Customer e as datas são repassados ao navegador sem reinterpretação.
type TransactionSnapshot struct {
	ID        string            `json:"id"`
	Status    TransactionStatus `json:"status"`
	Amount    int64             `json:"amount"`
	Customer  json.RawMessage   `json:"customer,omitempty"`
	CreatedAt string            `json:"createdAt"`
	PaidAt    *string           `json:"paidAt"`
}
