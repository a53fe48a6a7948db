package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         string   `json:"price" binding:"required"`
	OriginalPrice string   `json:"original_price"`
	Category      string   `json:"category" binding:"required"`
	Images        []string `json:"images"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	Tags          []string `json:"tags"`
}

// CreateProduct adds a product to the catalog.
// POST /api/products
func CreateProduct(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing required fields: name, price, and category are required",
			})
			return
		}

		product := models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Category:      req.Category,
			Images:        models.StringList(req.Images),
			Stock:         req.Stock,
			Featured:      req.Featured,
			Tags:          models.StringList(req.Tags),
		}

		err := store.CreateProduct(&product)
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, simulating product creation: %v", err)
			err = mock.CreateProduct(&product)
		}
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this name already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}
