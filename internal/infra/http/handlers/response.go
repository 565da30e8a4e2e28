package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/pix-checkout/internal/infra/http/middleware"
	"github.com/xavierca1/pix-checkout/internal/infra/integration/payevo"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message,omitempty"`
	Details string                    `json:"details,omitempty"`
	Fields  []usecase.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, ErrorResponse{Error: title, Message: message})
}

// writeGatewayError traduz erros do caso de uso para o contrato HTTP do navegador.
// upstreamMessage é a mensagem mostrada quando a PayEvo responde fora de 2xx.
func writeGatewayError(w http.ResponseWriter, err error, upstreamTitle, upstreamMessage string) {
	var (
		domainErr    *usecase.DomainError
		configErr    *usecase.ConfigurationError
		upstreamErr  *payevo.UpstreamError
		malformedErr *payevo.MalformedResponseError
	)

	switch {
	case errors.As(err, &domainErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Dados inválidos",
			Message: domainErr.Message,
			Fields:  domainErr.Fields,
		})
	case errors.As(err, &configErr):
		writeErrorResponse(w, http.StatusInternalServerError, "Configuração inválida", "Chave de API não configurada no servidor")
	case errors.As(err, &upstreamErr):
		middleware.RecordIntegrationError("payevo")
		writeJSON(w, upstreamErr.StatusCode, ErrorResponse{
			Error:   upstreamTitle,
			Message: upstreamMessage,
			Details: upstreamErr.Body,
		})
	case errors.As(err, &malformedErr):
		middleware.RecordIntegrationError("payevo")
		writeErrorResponse(w, http.StatusInternalServerError, "Resposta inválida", malformedErr.Reason)
	case errors.Is(err, payevo.ErrTimeout):
		middleware.RecordIntegrationError("payevo")
		writeErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor", "Tempo de resposta da API de pagamento esgotado")
	default:
		middleware.RecordIntegrationError("payevo")
		writeErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
}
