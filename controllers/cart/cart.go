package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type AddCartItemRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /api/cart/:userId
func GetCartItems(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.GetCartItems(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /api/cart
func AddToCart(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item data: " + err.Error()})
			return
		}

		// Reject items for products that do not exist.
		if _, err := store.GetProduct(req.ProductID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item := models.CartItem{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := store.AddToCart(&item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

// PUT /api/cart/item/:id
func UpdateCartItem(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update cart item: " + err.Error()})
			return
		}

		item, err := store.UpdateCartItem(c.Param("id"), req.Quantity)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// DELETE /api/cart/item/:id
func RemoveFromCart(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.RemoveFromCart(c.Param("id")); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /api/cart/clear/:userId
func ClearCart(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.ClearCart(c.Param("userId")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
