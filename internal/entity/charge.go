package entity

import (
	"net/url"
	"time"
)

const PaymentMethodPix = "pix"

// QRCodeRenderURL é usado quando o processador não devolve imagem do QR Code.
const QRCodeRenderURL = "https://api.qrserver.com/v1/create-qr-code/?size=256x256&data="

type LineItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // centavos
	Tangible  bool   `json:"tangible"`
}

// ChargeRequest é montado uma vez por tentativa de gerar o PIX.
type ChargeRequest struct {
	Amount   int64      `json:"amount"` // centavos
	Customer *Customer  `json:"customer"`
	Items    []LineItem `json:"items"`
}

type PixPayload struct {
	QRCode    string `json:"qrcode"`
	QRCodeURL string `json:"qrcode_url,omitempty"`
}

// ImageURL devolve a imagem enviada pelo processador ou uma derivada do código copia-e-cola.
func (p PixPayload) ImageURL() string {
	if p.QRCodeURL != "" {
		return p.QRCodeURL
	}
	return QRCodeRenderURL + url.QueryEscape(p.QRCode)
}

type ChargeResult struct {
	ID        string            `json:"id"`
	Status    TransactionStatus `json:"status"`
	Pix       PixPayload        `json:"pix"`
	CreatedAt time.Time         `json:"createdAt"`
}
