package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesjet/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.PaymentConfig{
		APIBase:        baseURL,
		APIKey:         "test-key",
		RequestTimeout: 2 * time.Second,
	})
}

func TestCreateSession_Success(t *testing.T) {
	var gotReq SessionRequest
	var gotAuth, gotIdempotency string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Session{ID: "cs_123", URL: "https://pay.example.com/cs_123"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	session, err := client.CreateSession(context.Background(), SessionRequest{
		LineItems: []LineItem{
			{Name: "Portfolio Theme", UnitAmount: 4900, Quantity: 1},
		},
		Mode:       "payment",
		SuccessURL: "http://localhost/success",
		CancelURL:  "http://localhost/cart",
		Metadata:   map[string]string{"orderId": "7", "userId": "3"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_123", session.URL)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
	assert.Equal(t, "payment", gotReq.Mode)
	assert.Equal(t, "7", gotReq.Metadata["orderId"])
	require.Len(t, gotReq.LineItems, 1)
	assert.Equal(t, int64(4900), gotReq.LineItems[0].UnitAmount)
	assert.Equal(t, 1, gotReq.LineItems[0].Quantity)
}

func TestCreateSession_ProcessorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	session, err := client.CreateSession(context.Background(), SessionRequest{Mode: "payment"})

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "502")
}

func TestCreateSession_MissingRedirectURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Session{ID: "cs_456"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	session, err := client.CreateSession(context.Background(), SessionRequest{Mode: "payment"})

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "no redirect url")
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(4900), MinorUnits(49.00))
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(10), MinorUnits(0.1))
	assert.Equal(t, int64(0), MinorUnits(0))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	secret := "whsec_test"

	signature := Sign(payload, secret)

	assert.True(t, VerifySignature(payload, signature, secret))
	assert.False(t, VerifySignature(payload, signature, "other-secret"))
	assert.False(t, VerifySignature([]byte("tampered"), signature, secret))
	assert.False(t, VerifySignature(payload, "", secret))
	assert.False(t, VerifySignature(payload, signature, ""))
}
