package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/infra/http/middleware"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

type CheckPaymentHandler struct {
	CheckPaymentUC usecase.PaymentChecker
	Logger         *zap.Logger
}

func NewCheckPaymentHandler(uc usecase.PaymentChecker, logger *zap.Logger) *CheckPaymentHandler {
	return &CheckPaymentHandler{CheckPaymentUC: uc, Logger: logger}
}

// Handle (GET /api/check-payment?transactionId=xxx)
func (h *CheckPaymentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transactionId")
	if transactionID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "ID da transação obrigatório", "Envie ?transactionId=xxx")
		return
	}

	output, err := h.CheckPaymentUC.Execute(r.Context(), transactionID)
	if err != nil {
		h.Logger.Warn("falha ao consultar pagamento", zap.String("transaction_id", transactionID), zap.Error(err))
		writeGatewayError(w, err, "Erro ao consultar pagamento", "")
		return
	}

	middleware.RecordStatusCheck(output.Outcome().Label())
	writeJSON(w, http.StatusOK, output)
}
