package payevo

import (
	"errors"
	"fmt"
)

// ErrTimeout: a PayEvo não respondeu dentro do prazo do client.
var ErrTimeout = errors.New("payevo: tempo de resposta esgotado")

// UpstreamError: a PayEvo respondeu fora da faixa 2xx. Body fica para diagnóstico.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payevo: api rejeitou (status %d)", e.StatusCode)
}

// MalformedResponseError: 2xx sem os campos esperados.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "payevo: resposta inválida: " + e.Reason
}
