// Package payment models the hosted-widget payment flow on the server: create
// a provider order, wait for the widget callback, verify it, and hand a
// normalized result to the caller.
package payment

import (
	"errors"
	"sync"
	"time"

	"github.com/premstore/storefront-api/payment/razorpay"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// CancelledByUser is the failure message used when the customer dismisses the
// hosted widget. Dismissal is a failure, not a distinct state, so retrying is
// allowed.
const CancelledByUser = "Payment cancelled by user"

var (
	ErrNotProcessing = errors.New("payment: no payment in progress")
	ErrDone          = errors.New("payment: payment already succeeded")
	ErrUnknownOrder  = errors.New("payment: unknown provider order")
)

// Result is the normalized outcome handed to the success callback.
type Result struct {
	Success   bool                   `json:"success"`
	PaymentID string                 `json:"paymentId"`
	OrderID   string                 `json:"orderId"`
	Amount    float64                `json:"amount"`
	Method    string                 `json:"method"`
	Timestamp int64                  `json:"timestamp"`
	Details   map[string]interface{} `json:"paymentDetails,omitempty"`
}

// WidgetResponse carries the fields the hosted widget posts back on
// completion.
type WidgetResponse struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Adapter tracks a single payment attempt. Failed is not terminal: Begin can
// be called again to retry.
type Adapter struct {
	mu sync.Mutex

	client   *razorpay.Client
	status   Status
	amount   float64
	lastErr  string
	provider *razorpay.Order
}

func NewAdapter(client *razorpay.Client) *Adapter {
	return &Adapter{client: client, status: StatusIdle}
}

func (a *Adapter) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// LastError returns the most recent failure message, empty if none.
func (a *Adapter) LastError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Begin creates the provider order and moves the adapter to Processing. It is
// valid from Idle and from Failed (retry); a succeeded payment cannot be
// restarted.
func (a *Adapter) Begin(amount float64, receipt string, notes map[string]string) (*razorpay.Order, error) {
	a.mu.Lock()
	if a.status == StatusSuccess {
		a.mu.Unlock()
		return nil, ErrDone
	}
	if a.status == StatusProcessing {
		a.mu.Unlock()
		return nil, errors.New("payment: already processing")
	}
	a.status = StatusProcessing
	a.amount = amount
	a.lastErr = ""
	a.mu.Unlock()

	order, err := a.client.CreateOrder(amount, "INR", receipt, notes)
	if err != nil {
		a.fail("Failed to create payment order")
		return nil, err
	}

	a.mu.Lock()
	a.provider = order
	a.mu.Unlock()
	return order, nil
}

// Complete verifies the widget callback. On verified success the adapter
// reaches Success and returns the normalized result; any verification problem
// moves it to Failed with a descriptive message.
func (a *Adapter) Complete(resp WidgetResponse) (*Result, error) {
	a.mu.Lock()
	if a.status != StatusProcessing {
		a.mu.Unlock()
		return nil, ErrNotProcessing
	}
	amount := a.amount
	a.mu.Unlock()

	verification, err := a.client.Verify(resp.OrderID, resp.PaymentID, resp.Signature)
	if err != nil {
		a.fail(err.Error())
		return nil, err
	}
	if !verification.Verified {
		a.fail("Payment verification failed")
		return nil, errors.New("payment verification failed")
	}

	result := &Result{
		Success:   true,
		PaymentID: resp.PaymentID,
		OrderID:   resp.OrderID,
		Amount:    amount,
		Method:    "Razorpay",
		Timestamp: time.Now().UnixMilli(),
		Details: map[string]interface{}{
			"status": verification.Status,
			"mode":   verification.Mode,
		},
	}

	a.mu.Lock()
	a.status = StatusSuccess
	a.mu.Unlock()
	return result, nil
}

// Cancel records the customer dismissing the widget.
func (a *Adapter) Cancel() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusProcessing {
		return ErrNotProcessing
	}
	a.status = StatusFailed
	a.lastErr = CancelledByUser
	return nil
}

func (a *Adapter) fail(msg string) {
	a.mu.Lock()
	a.status = StatusFailed
	a.lastErr = msg
	a.mu.Unlock()
}

// Registry maps provider order ids to in-flight adapters so the verify and
// cancel endpoints can find the attempt the widget belongs to.
type Registry struct {
	mu       sync.Mutex
	client   *razorpay.Client
	adapters map[string]*Adapter
}

func NewRegistry(client *razorpay.Client) *Registry {
	return &Registry{client: client, adapters: make(map[string]*Adapter)}
}

// Begin starts a new attempt and indexes it by the provider order id.
func (r *Registry) Begin(amount float64, receipt string, notes map[string]string) (*razorpay.Order, error) {
	adapter := NewAdapter(r.client)
	order, err := adapter.Begin(amount, receipt, notes)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.adapters[order.ID] = adapter
	r.mu.Unlock()
	return order, nil
}

func (r *Registry) Lookup(orderID string) (*Adapter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	adapter, ok := r.adapters[orderID]
	return adapter, ok
}

// Cancel records the customer dismissing the widget for the given provider
// order and drops the attempt from the registry. A retry goes through a fresh
// create-order call, so nothing remains to track.
func (r *Registry) Cancel(orderID string) error {
	adapter, ok := r.Lookup(orderID)
	if !ok {
		return ErrUnknownOrder
	}
	if err := adapter.Cancel(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.adapters, orderID)
	r.mu.Unlock()
	return nil
}

// Complete verifies a widget callback for a known order. A settled attempt is
// dropped from the registry so the adapter map does not grow with every
// payment. Callbacks for orders the registry never saw (e.g. created before a
// restart) are verified statelessly against the client.
func (r *Registry) Complete(resp WidgetResponse) (*Result, error) {
	if adapter, ok := r.Lookup(resp.OrderID); ok {
		result, err := adapter.Complete(resp)
		if err == nil {
			r.mu.Lock()
			delete(r.adapters, resp.OrderID)
			r.mu.Unlock()
		}
		return result, err
	}

	verification, err := r.client.Verify(resp.OrderID, resp.PaymentID, resp.Signature)
	if err != nil {
		return nil, err
	}
	if !verification.Verified {
		return nil, errors.New("payment verification failed")
	}
	return &Result{
		Success:   true,
		PaymentID: resp.PaymentID,
		OrderID:   resp.OrderID,
		Method:    "Razorpay",
		Timestamp: time.Now().UnixMilli(),
		Details: map[string]interface{}{
			"status": verification.Status,
			"mode":   verification.Mode,
		},
	}, nil
}
