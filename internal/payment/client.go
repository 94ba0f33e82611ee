package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"themesjet/internal/config"
)

// LineItem mirrors the processor's hosted-checkout line shape. Amounts are in
// minor currency units and quantity is always one in this marketplace.
type LineItem struct {
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	UnitAmount int64  `json:"unitAmount"`
	Quantity   int    `json:"quantity"`
}

type SessionRequest struct {
	LineItems  []LineItem        `json:"lineItems"`
	Mode       string            `json:"mode"`
	SuccessURL string            `json:"successUrl"`
	CancelURL  string            `json:"cancelUrl"`
	Metadata   map[string]string `json:"metadata"`
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: cfg.APIBase,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// MinorUnits converts a decimal price to the processor's integer amount.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateSession requests a hosted checkout session and returns its redirect
// URL. Failures are not retried; the caller decides what to do with the
// already-persisted order.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building session request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling payment processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("payment processor returned status %d: %s", resp.StatusCode, string(data))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decoding session response: %w", err)
	}

	if session.URL == "" {
		return nil, fmt.Errorf("payment processor returned no redirect url")
	}

	return &session, nil
}

// Event is the processor's webhook payload for completed checkout sessions.
type Event struct {
	Type      string            `json:"type"`
	SessionID string            `json:"sessionId"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
}

const EventCheckoutCompleted = "checkout.session.completed"
