package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/checkout"
	"github.com/premstore/storefront-api/storage"
)

type StartCheckoutRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id"` // set for a direct "buy now" purchase
}

// StartCheckout stages a checkout session from the user's cart, or from a
// single product when product_id is given.
// POST /api/checkout
func StartCheckout(manager *checkout.Manager, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout data: " + err.Error()})
			return
		}

		var session *checkout.Session
		if req.ProductID != "" {
			product, err := store.GetProduct(req.ProductID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
				return
			}
			session = manager.Start(req.UserID, product, nil)
		} else {
			items, err := store.GetCartItems(req.UserID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
				return
			}
			lines := checkout.LinesFromCart(items, store.GetProduct)
			// An empty cart still opens a session; the resulting order totals 0.
			session = manager.Start(req.UserID, nil, lines)
		}

		c.JSON(http.StatusCreated, gin.H{
			"session_id": session.ID(),
			"order_id":   session.OrderID(),
			"state":      session.State(),
			"total":      session.Total(),
		})
	}
}

// SubmitShipping validates the shipping form and advances the session to
// review. Validation failures come back as a field→message map.
// POST /api/checkout/:id/shipping
func SubmitShipping(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := manager.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}

		var input checkout.ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping data: " + err.Error()})
			return
		}

		fieldErrs, err := session.SubmitShipping(input)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Shipping can no longer be edited"})
			return
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": session.State()})
	}
}

// Back returns the session from review to the shipping step; the captured
// address is kept.
// POST /api/checkout/:id/back
func Back(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := manager.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}
		if err := session.Back(); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot go back from the current step"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"state":   session.State(),
			"address": session.Address(),
		})
	}
}

// PlaceOrder triggers placement. The session itself refuses a second trigger;
// an Idempotency-Key header additionally lets retried requests receive the
// original order id instead of an error.
// POST /api/checkout/:id/place
func PlaceOrder(manager *checkout.Manager, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := manager.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}

		key := c.GetHeader("Idempotency-Key")
		if key != "" {
			if orderID, ok := manager.IdempotentOrder(key); ok {
				c.JSON(http.StatusOK, gin.H{"order_id": orderID, "duplicate": true})
				return
			}
		}

		order, err := session.PlaceOrder(store)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrAlreadyPlaced):
				c.JSON(http.StatusConflict, gin.H{"error": "Order has already been placed"})
			case errors.Is(err, checkout.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "Shipping information is required first"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// The key is recorded only once the store accepted the order, so a
		// failed placement leaves the key free for the client's retry.
		if key != "" {
			manager.ClaimIdempotencyKey(key, order.ID)
		}

		BroadcastOrder(*order)
		c.JSON(http.StatusCreated, gin.H{"order": order, "state": session.State()})
	}
}

// GetCheckout reports the session's current state for re-rendering the flow.
// GET /api/checkout/:id
func GetCheckout(manager *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := manager.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID(),
			"order_id":   session.OrderID(),
			"state":      session.State(),
			"total":      session.Total(),
			"address":    session.Address(),
		})
	}
}
