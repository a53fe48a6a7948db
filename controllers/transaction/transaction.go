package transactionControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type CreateTransactionRequest struct {
	OrderID  string  `json:"order_id" binding:"required"`
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
	Provider string  `json:"provider" binding:"required"`
}

type UpdateTransactionRequest struct {
	Status    string `json:"status"`
	PaymentID string `json:"payment_id"`
}

type CreateTransactionEventRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Data          string `json:"data"`
}

// POST /api/transactions
func CreateTransaction(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction data: " + err.Error()})
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "INR"
		}
		txn := models.Transaction{
			OrderID:  req.OrderID,
			UserID:   req.UserID,
			Amount:   req.Amount,
			Currency: currency,
			Provider: req.Provider,
			Status:   models.TransactionStatusInitiated,
		}
		if err := store.CreateTransaction(&txn); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Transaction already exists for this order"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction data"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"transaction": txn})
	}
}

// PUT /api/transactions/:orderId
func UpdateTransaction(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update transaction: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Status != "" {
			updates["status"] = req.Status
		}
		if req.PaymentID != "" {
			updates["payment_id"] = req.PaymentID
		}

		txn, err := store.UpdateTransaction(c.Param("orderId"), updates)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": txn})
	}
}

// POST /api/transaction-events
func CreateTransactionEvent(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data: " + err.Error()})
			return
		}

		event := models.TransactionEvent{
			TransactionID: req.TransactionID,
			Type:          req.Type,
			Data:          req.Data,
		}
		if err := store.CreateTransactionEvent(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"event": event})
	}
}
