package paymentgateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "rzp_test_key", "secret123", "INR", 5*time.Second, &noopLogger{})
}

func TestCreateOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret123", pass)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(236000), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "booking-uid-1", req.Receipt)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{
			ID:       "order_ABC123",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	order, err := client.CreateOrder(context.Background(), 236000, "booking-uid-1")

	require.NoError(t, err)
	assert.Equal(t, "order_ABC123", order.ID)
	assert.Equal(t, int64(236000), order.Amount)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateOrder(context.Background(), 100, "booking-uid-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Order{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateOrder(context.Background(), 100, "booking-uid-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateOrder_ServerUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateOrder(context.Background(), 100, "booking-uid-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestVerifySignature(t *testing.T) {
	client := newTestClient("http://unused")

	mac := hmac.New(sha256.New, []byte("secret123"))
	mac.Write([]byte("order_ABC123|pay_XYZ789"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.NoError(t, client.VerifySignature("order_ABC123", "pay_XYZ789", valid))

	err := client.VerifySignature("order_ABC123", "pay_XYZ789", "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Подпись от другого платежа не подходит
	err = client.VerifySignature("order_ABC123", "pay_OTHER", valid)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestClientAccessors(t *testing.T) {
	client := newTestClient("http://unused")
	assert.Equal(t, "rzp_test_key", client.KeyID())
	assert.Equal(t, "INR", client.Currency())
}
