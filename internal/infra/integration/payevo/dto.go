package payevo

import "encoding/json"

// --- PAYLOADS: o que o Client manda para a PayEvo (interno) ---

type createTransactionRequest struct {
	Amount        int64           `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Customer      customerPayload `json:"customer"`
	Items         []itemPayload   `json:"items"`
}

type customerPayload struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Document documentPayload `json:"document"`
}

type documentPayload struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type itemPayload struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Tangible  bool   `json:"tangible"`
}

// --- RESPONSE: o que a PayEvo devolve ---

type transactionResponse struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Amount    int64           `json:"amount"`
	Customer  json.RawMessage `json:"customer"`
	CreatedAt string          `json:"createdAt"`
	PaidAt    *string         `json:"paidAt"`
	Pix       *pixResponse    `json:"pix"`
}

type pixResponse struct {
	QRCode    string `json:"qrcode"`
	QRCodeURL string `json:"qrcode_url"`
}
