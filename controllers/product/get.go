package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/storage"
)

// GetProductByID returns a single product.
// GET /api/products/:id
func GetProductByID(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := store.GetProduct(id)
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, using mock products: %v", err)
			product, err = mock.GetProduct(id)
		}
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
