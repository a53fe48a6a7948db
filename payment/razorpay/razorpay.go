package razorpay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://api.razorpay.com/v1"

// Order is the provider order object handed to the hosted payment widget.
type Order struct {
	ID         string            `json:"id"`
	Entity     string            `json:"entity"`
	Amount     int64             `json:"amount"` // paise
	AmountPaid int64             `json:"amount_paid"`
	AmountDue  int64             `json:"amount_due"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt"`
	Status     string            `json:"status"`
	Attempts   int               `json:"attempts"`
	Notes      map[string]string `json:"notes"`
	CreatedAt  int64             `json:"created_at"`
}

// Verification is the outcome of checking a widget callback.
type Verification struct {
	Verified  bool   `json:"verified"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Mode      string `json:"mode"` // "live" or "mock"
	Timestamp int64  `json:"timestamp"`
}

// Client talks to the Razorpay orders API. Without a key secret it runs in
// development mode: orders are synthesized locally and every verification
// passes, matching the behavior the storefront shipped with.
type Client struct {
	keyID     string
	keySecret string
	apiURL    string
	http      *http.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    defaultAPIURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func NewFromEnv() *Client {
	return New(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
}

func (c *Client) KeyID() string { return c.keyID }

// Live reports whether real provider credentials are configured.
func (c *Client) Live() bool { return c.keySecret != "" }

// CreateOrder registers a provider order for the given amount (major units).
func (c *Client) CreateOrder(amount float64, currency, receipt string, notes map[string]string) (*Order, error) {
	if currency == "" {
		currency = "INR"
	}
	// Round rather than truncate: 19.99 is 1998.9999... in binary and would
	// otherwise lose a paisa.
	paise := int64(math.Round(amount * 100))

	if !c.Live() {
		return mockOrder(paise, currency, receipt, notes), nil
	}

	payload := map[string]interface{}{
		"amount":   paise,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, c.apiURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(data))
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	return &order, nil
}

func mockOrder(paise int64, currency, receipt string, notes map[string]string) *Order {
	if notes == nil {
		notes = map[string]string{}
	}
	return &Order{
		ID:        fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), randomSuffix(6)),
		Entity:    "order",
		Amount:    paise,
		AmountDue: paise,
		Currency:  currency,
		Receipt:   receipt,
		Status:    "created",
		Notes:     notes,
		CreatedAt: time.Now().Unix(),
	}
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// Signature computes the checkout signature Razorpay issues for a completed
// payment: HMAC-SHA256 over "<orderID>|<paymentID>" keyed with the secret.
func (c *Client) Signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a widget callback against the key secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	expected := c.Signature(orderID, paymentID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// Verify validates a completed payment. In live mode the signature must match;
// in development mode the callback is trusted and the result is labeled mock.
func (c *Client) Verify(orderID, paymentID, signature string) (*Verification, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, fmt.Errorf("missing payment verification data")
	}

	verification := &Verification{
		PaymentID: paymentID,
		OrderID:   orderID,
		Timestamp: time.Now().UnixMilli(),
	}

	if !c.Live() {
		verification.Verified = true
		verification.Status = "captured"
		verification.Mode = "mock"
		return verification, nil
	}

	verification.Mode = "live"
	if !c.VerifySignature(orderID, paymentID, signature) {
		verification.Status = "failed"
		return verification, nil
	}
	verification.Verified = true
	verification.Status = "captured"
	return verification, nil
}
