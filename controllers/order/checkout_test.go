package orderControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premstore/storefront-api/checkout"
	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

func newCheckoutRouter(manager *checkout.Manager, store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/checkout", StartCheckout(manager, store))
	r.GET("/api/checkout/:id", GetCheckout(manager))
	r.POST("/api/checkout/:id/shipping", SubmitShipping(manager))
	r.POST("/api/checkout/:id/back", Back(manager))
	r.POST("/api/checkout/:id/place", PlaceOrder(manager, store))
	return r
}

func do(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededCheckoutStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	store := storage.Seed(storage.NewMemoryStore())
	require.NoError(t, store.AddToCart(&models.CartItem{UserID: "u1", ProductID: "1", Quantity: 1}))
	require.NoError(t, store.AddToCart(&models.CartItem{UserID: "u1", ProductID: "2", Quantity: 2}))
	return store
}

func shippingPayload() gin.H {
	return gin.H{
		"fullName": "Priya Sharma",
		"email":    "priya@example.com",
		"phone":    "9876543210",
		"address":  "221B Residency Road, Flat 4",
		"city":     "Bengaluru",
		"state":    "Karnataka",
		"zipCode":  "560025",
	}
}

type startResponse struct {
	SessionID string  `json:"session_id"`
	OrderID   string  `json:"order_id"`
	State     string  `json:"state"`
	Total     float64 `json:"total"`
}

func startSession(t *testing.T, r *gin.Engine, body gin.H) startResponse {
	t.Helper()
	w := do(r, http.MethodPost, "/api/checkout", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp startResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCheckoutFlow(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	assert.Equal(t, "collecting_shipping", started.State)
	assert.InDelta(t, 459.97, started.Total, 0.001)

	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reviewing_order")

	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
		State string       `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Equal(t, "placed", placed.State)
	assert.Equal(t, started.OrderID, placed.Order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, placed.Order.Status)

	items, err := store.GetCartItems("u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutShippingValidationErrors(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})

	payload := shippingPayload()
	payload["phone"] = "12ab"
	payload["zipCode"] = "12"

	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", payload, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors, "phone")
	assert.Contains(t, resp.Errors, "zipCode")
}

func TestCheckoutDoubleSubmitIsConflict(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already been placed")

	orders, err := store.GetOrders("u1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestCheckoutIdempotencyKeyReturnsOriginalOrder(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	headers := map[string]string{"Idempotency-Key": "retry-abc"}
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OrderID   string `json:"order_id"`
		Duplicate bool   `json:"duplicate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Duplicate)
	assert.Equal(t, started.OrderID, resp.OrderID)

	orders, err := store.GetOrders("u1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

// flakyStore fails a given number of PlaceOrder calls before recovering,
// simulating a transient database outage during placement.
type flakyStore struct {
	storage.Store
	failures int
}

func (s *flakyStore) PlaceOrder(order *models.Order, clearCartUserID string) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("dial tcp 127.0.0.1:5432: connection refused")
	}
	return s.Store.PlaceOrder(order, clearCartUserID)
}

func TestCheckoutIdempotencyKeySurvivesFailedPlacement(t *testing.T) {
	backing := seededCheckoutStore(t)
	store := &flakyStore{Store: backing, failures: 1}
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	headers := map[string]string{"Idempotency-Key": "retry-key"}

	// The store rejects the first placement; the key must not be consumed.
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, headers)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	orders, err := backing.GetOrders("u1")
	require.NoError(t, err)
	require.Empty(t, orders)

	// The retry with the same key actually places the order.
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	orders, err = backing.GetOrders("u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// A further retry is the duplicate case and returns the placed order's id.
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OrderID   string `json:"order_id"`
		Duplicate bool   `json:"duplicate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Duplicate)
	assert.Equal(t, started.OrderID, resp.OrderID)
}

func TestCheckoutPlaceBeforeShipping(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Shipping information is required")
}

func TestCheckoutBackKeepsAddress(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1"})
	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/back", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "collecting_shipping")
	assert.Contains(t, w.Body.String(), "Priya Sharma")
}

func TestCheckoutDirectPurchase(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "u1", "product_id": "2"})
	assert.InDelta(t, 79.99, started.Total, 0.001)

	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Buy-now leaves the cart untouched.
	items, err := store.GetCartItems("u1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCheckoutUnknownProductAndSession(t *testing.T) {
	store := seededCheckoutStore(t)
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	w := do(r, http.MethodPost, "/api/checkout", gin.H{"user_id": "u1", "product_id": "999"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/checkout/no-such-session", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	store := storage.Seed(storage.NewMemoryStore())
	manager := checkout.NewManager()
	r := newCheckoutRouter(manager, store)

	started := startSession(t, r, gin.H{"user_id": "empty-user"})
	assert.Zero(t, started.Total)

	w := do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/shipping", shippingPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/checkout/"+started.SessionID+"/place", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)
}
