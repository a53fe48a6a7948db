package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

type CreateReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// GET /api/reviews/:productId
func GetReviews(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := store.GetReviews(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// POST /api/reviews
func CreateReview(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data: " + err.Error()})
			return
		}

		review := models.Review{
			ProductID: req.ProductID,
			UserID:    req.UserID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := store.CreateReview(&review); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review": review})
	}
}
