package paymentgateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платёжного шлюза (Razorpay-совместимый REST API)
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	currency   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL, keyID, keySecret, currency string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// KeyID возвращает публичный ключ шлюза (передаётся на клиент для чекаута)
func (c *Client) KeyID() string {
	return c.keyID
}

// Currency возвращает валюту расчётов
func (c *Client) Currency() string {
	return c.currency
}

// CreateOrder создает платёжный ордер на стороне шлюза.
// Сумма передаётся в минорных единицах валюты, receipt - UID бронирования.
func (c *Client) CreateOrder(ctx context.Context, amount int64, receipt string) (*Order, error) {
	c.log.Info("Creating payment order: amount=%d, receipt=%s", amount, receipt)

	payload := createOrderRequest{
		Amount:   amount,
		Currency: c.currency,
		Receipt:  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("%w: order ID is empty", ErrInvalidResponse)
	}

	c.log.Info("Payment order created: order_id=%s", order.ID)
	return &order, nil
}

// VerifySignature проверяет подпись платежа.
// Шлюз подписывает строку "orderID|paymentID" ключом keySecret через HMAC-SHA256,
// подпись передаётся в hex. Сравнение константное по времени.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		c.log.Warn("Payment signature mismatch: order_id=%s, payment_id=%s", orderID, paymentID)
		return ErrSignatureMismatch
	}

	return nil
}
