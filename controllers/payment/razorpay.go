package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/payment"
)

type CreateRazorpayOrderRequest struct {
	Amount   float64           `json:"amount" binding:"required"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type CancelPaymentRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id" binding:"required"`
}

// CreateRazorpayOrder starts a payment attempt and returns the provider order
// the hosted widget needs.
// POST /api/payments/razorpay/create-order
func CreateRazorpayOrder(registry *payment.Registry, keyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRazorpayOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}

		order, err := registry.Begin(req.Amount, req.Receipt, req.Notes)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order":   order,
			"keyId":   keyID,
		})
	}
}

// VerifyRazorpayPayment checks the widget completion callback and returns the
// normalized payment result.
// POST /api/payments/razorpay/verify
func VerifyRazorpayPayment(registry *payment.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp payment.WidgetResponse
		if err := c.ShouldBindJSON(&resp); err != nil ||
			resp.OrderID == "" || resp.PaymentID == "" || resp.Signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment verification data"})
			return
		}

		result, err := registry.Complete(resp)
		if err != nil {
			if errors.Is(err, payment.ErrNotProcessing) {
				c.JSON(http.StatusConflict, gin.H{"error": "No payment in progress for this order"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"success":  false,
				"verified": false,
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"verified": true,
			"payment":  result,
		})
	}
}

// CancelRazorpayPayment records the customer dismissing the widget. The
// attempt fails but can be retried with a fresh create-order call.
// POST /api/payments/razorpay/cancel
func CancelRazorpayPayment(registry *payment.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CancelPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing razorpay_order_id"})
			return
		}

		if err := registry.Cancel(req.RazorpayOrderID); err != nil {
			if errors.Is(err, payment.ErrUnknownOrder) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No payment in progress for this order"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": "Payment is not in progress"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"status":  payment.StatusFailed,
			"error":   payment.CancelledByUser,
		})
	}
}
