package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *string  `json:"price"`
	OriginalPrice *string  `json:"original_price"`
	Category      *string  `json:"category"`
	Images        []string `json:"images"`
	Stock         *int     `json:"stock"`
	Featured      *bool    `json:"featured"`
	Tags          []string `json:"tags"`
}

// UpdateProduct applies a partial update to a product.
// PUT /api/products/:id
func UpdateProduct(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update product: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.OriginalPrice != nil {
			updates["original_price"] = *req.OriginalPrice
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Images != nil {
			updates["images"] = models.StringList(req.Images)
		}
		if req.Stock != nil {
			updates["stock"] = *req.Stock
		}
		if req.Featured != nil {
			updates["featured"] = *req.Featured
		}
		if req.Tags != nil {
			updates["tags"] = models.StringList(req.Tags)
		}

		product, err := store.UpdateProduct(id, updates)
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, simulating product update: %v", err)
			product, err = mock.UpdateProduct(id, updates)
		}
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
