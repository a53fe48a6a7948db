package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type AddWishlistItemRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

// GET /api/wishlist/:userId
func GetWishlistItems(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.GetWishlistItems(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get wishlist items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /api/wishlist
func AddToWishlist(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddWishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item data: " + err.Error()})
			return
		}

		item := models.WishlistItem{UserID: req.UserID, ProductID: req.ProductID}
		if err := store.AddToWishlist(&item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add wishlist item"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

// DELETE /api/wishlist/:userId/:productId
func RemoveFromWishlist(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.RemoveFromWishlist(c.Param("userId"), c.Param("productId"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove wishlist item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
