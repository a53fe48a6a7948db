package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/premstore/storefront-api/controllers/order"
	productControllers "github.com/premstore/storefront-api/controllers/product"
	"github.com/premstore/storefront-api/middleware"
)

// SetupAdminRoutes wires the protected admin surface: the product export
// behind the API key and the live order feed behind a user token.
func SetupAdminRoutes(api *gin.RouterGroup, deps *Deps) {
	admin := api.Group("/admin")
	{
		admin.GET("/products/export", middleware.ValidateAPIKey, productControllers.ExportProductsToExcel(deps.Store, deps.Mock))
		admin.GET("/orders/feed", middleware.ValidateToken, orderControllers.OrderFeedHandler)
	}
}
