package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type State string

const (
	StateCollectingShipping State = "collecting_shipping"
	StateReviewingOrder     State = "reviewing_order"
	StatePlacing            State = "placing"
	StatePlaced             State = "placed"
)

const deliveryWindow = 5 * 24 * time.Hour

var (
	ErrInvalidTransition = errors.New("checkout: action not allowed in current state")
	ErrAlreadyPlaced     = errors.New("checkout: order placement already triggered")
)

// Session drives one checkout: collect shipping info, review, place the
// order. A session checks out either a single direct-purchase product or the
// staged cart lines.
type Session struct {
	mu sync.Mutex

	id      string
	userID  string
	state   State
	direct  *models.Product
	items   []LineItem
	address  *models.ShippingAddress
	orderID  string
	placed   *models.Order
	placedAt time.Time
}

// NewSession stages a checkout. When direct is non-nil the cart is left alone
// and only that product (quantity 1) is ordered.
func NewSession(id, userID string, direct *models.Product, cartLines []LineItem) *Session {
	s := &Session{
		id:      id,
		userID:  userID,
		state:   StateCollectingShipping,
		direct:  direct,
		orderID: fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
	}
	if direct != nil {
		s.items = []LineItem{{Product: *direct, Quantity: 1}}
	} else {
		s.items = cartLines
	}
	return s
}

func (s *Session) ID() string     { return s.id }
func (s *Session) UserID() string { return s.userID }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OrderID is fixed at session creation, mirroring the confirmation reference
// shown to the customer before placement.
func (s *Session) OrderID() string { return s.orderID }

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

func (s *Session) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Address returns the shipping address captured so far, or nil.
func (s *Session) Address() *models.ShippingAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.address == nil {
		return nil
	}
	addr := *s.address
	return &addr
}

// SubmitShipping validates the form. On success the session advances to
// review; otherwise the field→message map is returned and the state is
// unchanged.
func (s *Session) SubmitShipping(in ShippingInput) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCollectingShipping {
		return nil, ErrInvalidTransition
	}
	if errs := ValidateShipping(in); len(errs) > 0 {
		return errs, nil
	}
	addr := in.ToAddress()
	s.address = &addr
	s.state = StateReviewingOrder
	return nil, nil
}

// Back returns from review to the shipping step. The captured address is
// retained so the form can be re-rendered filled in.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewingOrder {
		return ErrInvalidTransition
	}
	s.state = StateCollectingShipping
	return nil
}

// PlaceOrder builds the order from the staged items and dispatches it to the
// store exactly once. The cart is cleared in the same transaction unless this
// is a direct-purchase checkout. A second invocation fails with
// ErrAlreadyPlaced regardless of whether the first has finished: the
// double-submit guard is enforced here, not left to a disabled button.
func (s *Session) PlaceOrder(store storage.Store) (*models.Order, error) {
	s.mu.Lock()
	switch s.state {
	case StateReviewingOrder:
		// proceed
	case StatePlacing, StatePlaced:
		s.mu.Unlock()
		return nil, ErrAlreadyPlaced
	default:
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	s.state = StatePlacing

	now := time.Now()
	order := &models.Order{
		ID:                s.orderID,
		UserID:            s.userID,
		Total:             Subtotal(s.items),
		Status:            models.OrderStatusConfirmed,
		PaymentMethod:     "Cash on Delivery",
		TransactionID:     fmt.Sprintf("COD_%d", now.UnixMilli()),
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryWindow),
	}
	if s.address != nil {
		order.ShippingAddress = *s.address
	}
	for _, line := range s.items {
		image := ""
		if len(line.Product.Images) > 0 {
			image = line.Product.Images[0]
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductImage: image,
			Price:        line.Product.Price,
			Quantity:     line.quantity(),
		})
	}

	clearCartFor := ""
	if s.direct == nil {
		clearCartFor = s.userID
	}
	s.mu.Unlock()

	if err := store.PlaceOrder(order, clearCartFor); err != nil {
		s.mu.Lock()
		s.state = StateReviewingOrder
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.state = StatePlaced
	s.placed = order
	s.placedAt = time.Now()
	s.mu.Unlock()
	return order, nil
}

// finished reports whether the session reached Placed and when, for the
// manager's retention sweep.
func (s *Session) finished() (bool, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StatePlaced, s.placedAt
}

// PlacedOrder returns the dispatched order once the session reached Placed.
func (s *Session) PlacedOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placed
}
