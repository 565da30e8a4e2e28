package payevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

const (
	DefaultBaseURL = "https://apiv2.payevo.com.br/functions/v1"
	DefaultTimeout = 30 * time.Second
)

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(secretKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: timeout},
	}
}

// Configured: sem a secret key nenhuma chamada é feita.
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// CreateTransaction cria a cobrança PIX e devolve o copia-e-cola.
func (c *Client) CreateTransaction(ctx context.Context, input entity.ChargeRequest) (*entity.ChargeResult, error) {
	payload := toCreateTransactionRequest(input)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	var response transactionResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	if response.Pix == nil || response.Pix.QRCode == "" {
		return nil, &MalformedResponseError{Reason: "api não retornou código PIX"}
	}

	return &entity.ChargeResult{
		ID:     response.ID,
		Status: entity.TransactionStatus(response.Status),
		Pix: entity.PixPayload{
			QRCode:    response.Pix.QRCode,
			QRCodeURL: response.Pix.QRCodeURL,
		},
	}, nil
}

// GetTransaction consulta o status atual. Pode ser chamado repetidamente.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*entity.TransactionSnapshot, error) {
	endpoint := c.baseURL + "/transactions/" + url.PathEscape(transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	var response transactionResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	return &entity.TransactionSnapshot{
		ID:        response.ID,
		Status:    entity.TransactionStatus(response.Status),
		Amount:    response.Amount,
		Customer:  response.Customer,
		CreatedAt: response.CreatedAt,
		PaidAt:    response.PaidAt,
	}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("erro na conexão com payevo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return &MalformedResponseError{Reason: err.Error()}
	}
	return nil
}

// setHeaders: Basic com a secret key como usuário e senha vazia.
func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func toCreateTransactionRequest(input entity.ChargeRequest) createTransactionRequest {
	payload := createTransactionRequest{
		Amount:        input.Amount,
		PaymentMethod: entity.PaymentMethodPix,
		Items:         make([]itemPayload, 0, len(input.Items)),
	}

	if c := input.Customer; c != nil {
		payload.Customer = customerPayload{
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		}
		if c.Document != nil {
			docType := c.Document.Type
			if docType == "" {
				docType = entity.DocumentTypeCPF
			}
			payload.Customer.Document = documentPayload{Type: docType, Number: c.Document.Number}
		}
	}

	for _, item := range input.Items {
		payload.Items = append(payload.Items, itemPayload{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Tangible:  item.Tangible,
		})
	}

	return payload
}
