package categoryControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GET /api/categories
func GetCategories(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.GetCategories()
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, using mock categories: %v", err)
			categories, _ = mock.GetCategories()
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// POST /api/categories
func CreateCategory(store, mock storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category data: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
		}

		err := store.CreateCategory(&category)
		if storage.IsUnavailable(err) {
			log.Printf("⚠️ Database not available, simulating category creation: %v", err)
			err = mock.CreateCategory(&category)
		}
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category data"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"category": category})
	}
}
