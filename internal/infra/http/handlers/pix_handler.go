package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/http/middleware"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type PixHandler struct {
	CreateChargeUC usecase.ChargeCreator
	Logger         *zap.Logger
}

func NewPixHandler(uc usecase.ChargeCreator, logger *zap.Logger) *PixHandler {
	return &PixHandler{CreateChargeUC: uc, Logger: logger}
}

type pixBody struct {
	QRCode    string  `json:"qrcode"`
	QRCodeURL *string `json:"qrcode_url"`
}

type PixResponse struct {
	Success   bool                     `json:"success"`
	ID        string                   `json:"id"`
	Status    entity.TransactionStatus `json:"status"`
	Pix       pixBody                  `json:"pix"`
	CreatedAt string                   `json:"createdAt"`
}

// Handle (POST /api/pix)
func (h *PixHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input entity.ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Dados inválidos", "Campos obrigatórios: amount, customer, items")
		return
	}

	result, err := h.CreateChargeUC.CreateCharge(r.Context(), input)
	if err != nil {
		middleware.RecordCharge("error")
		h.Logger.Warn("falha ao gerar PIX", zap.Error(err))
		writeGatewayError(w, err, "Erro na API de pagamento", "Não foi possível gerar o código PIX")
		return
	}
	middleware.RecordCharge("created")

	resp := PixResponse{
		Success: true,
		ID:      result.ID,
		Status:  result.Status,
		Pix:     pixBody{QRCode: result.Pix.QRCode},
	}
	if result.Pix.QRCodeURL != "" {
		u := result.Pix.QRCodeURL
		resp.Pix.QRCodeURL = &u
	}
	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	resp.CreatedAt = createdAt.UTC().Format(isoMillis)

	writeJSON(w, http.StatusOK, resp)
}
