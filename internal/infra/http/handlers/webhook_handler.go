package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/infra/http/middleware"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

const maxWebhookBody = 1 << 20

type WebhookProcessor interface {
	Execute(ctx context.Context, in usecase.WebhookInput) (*usecase.WebhookOutput, error)
}

type WebhookHandler struct {
	ProcessWebhookUC WebhookProcessor
	Logger           *zap.Logger
}

func NewWebhookHandler(uc WebhookProcessor, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{ProcessWebhookUC: uc, Logger: logger}
}

type WebhookResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Handle (POST /api/webhook) responde 200 mesmo quando o processamento interno falha:
// qualquer outro status faz a PayEvo reenviar a notificação.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.internalFailure(w, err)
		return
	}

	var input usecase.WebhookInput
	if err := json.Unmarshal(body, &input); err != nil {
		h.internalFailure(w, err)
		return
	}
	input.Raw = body

	output, err := h.ProcessWebhookUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			h.Logger.Warn("webhook sem id ou status", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Dados inválidos",
				Message: "ID e status são obrigatórios",
				Fields:  domainErr.Fields,
			})
			return
		}
		h.internalFailure(w, err)
		return
	}

	middleware.RecordWebhook(output.Outcome.Label())

	resp := WebhookResponse{
		Success:       true,
		Message:       output.Message,
		TransactionID: output.TransactionID,
	}
	if output.Processed {
		resp.Status = "processed"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *WebhookHandler) internalFailure(w http.ResponseWriter, err error) {
	h.Logger.Error("erro ao processar webhook", zap.Error(err))
	middleware.RecordWebhook("error")
	writeJSON(w, http.StatusOK, WebhookResponse{
		Success: false,
		Error:   "Erro interno",
		Message: err.Error(),
	})
}
