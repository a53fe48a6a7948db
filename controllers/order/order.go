package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type CreateOrderRequest struct {
	UserID          string                 `json:"user_id" binding:"required"`
	Items           []CreateOrderItem      `json:"items" binding:"required"`
	Total           float64                `json:"total"`
	Status          string                 `json:"status"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TransactionID   string                 `json:"transactionId"`
}

type CreateOrderItem struct {
	ProductID    string `json:"product_id" binding:"required"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
}

// GET /api/orders/user/:userId
func GetUserOrders(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.GetOrders(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /api/orders/detail/:orderId
func GetOrderByID(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := store.GetOrder(c.Param("orderId"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// CreateOrder persists a fully-specified order record. The checkout flow is
// the usual path; this endpoint exists for payment-provider callbacks that
// already carry the complete order.
// POST /api/orders
func CreateOrder(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data: " + err.Error()})
			return
		}

		status := models.OrderStatus(req.Status)
		switch status {
		case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusCancelled:
		case "":
			status = models.OrderStatusPending
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		now := time.Now()
		order := models.Order{
			UserID:            req.UserID,
			Total:             req.Total,
			Status:            status,
			ShippingAddress:   req.ShippingAddress,
			PaymentMethod:     req.PaymentMethod,
			TransactionID:     req.TransactionID,
			CreatedAt:         now,
			EstimatedDelivery: now.Add(5 * 24 * time.Hour),
		}
		for _, item := range req.Items {
			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Price:        item.Price,
				Quantity:     quantity,
			})
		}

		if err := store.CreateOrder(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
			return
		}

		BroadcastOrder(order)
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
