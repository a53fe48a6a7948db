package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/premstore/storefront-api/controllers/cart"
	categoryControllers "github.com/premstore/storefront-api/controllers/category"
	productControllers "github.com/premstore/storefront-api/controllers/product"
	reviewControllers "github.com/premstore/storefront-api/controllers/review"
	wishlistControllers "github.com/premstore/storefront-api/controllers/wishlist"
)

// SetupCatalogRoutes wires products, categories, cart, wishlist and reviews.
func SetupCatalogRoutes(api *gin.RouterGroup, deps *Deps) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.Store, deps.Mock))
		products.GET("/:id", productControllers.GetProductByID(deps.Store, deps.Mock))
		products.POST("", productControllers.CreateProduct(deps.Store, deps.Mock))
		products.PUT("/:id", productControllers.UpdateProduct(deps.Store, deps.Mock))
		products.DELETE("/:id", productControllers.DeleteProduct(deps.Store, deps.Mock))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryControllers.GetCategories(deps.Store, deps.Mock))
		categories.POST("", categoryControllers.CreateCategory(deps.Store, deps.Mock))
	}

	cart := api.Group("/cart")
	{
		cart.GET("/:userId", cartControllers.GetCartItems(deps.Store))
		cart.POST("", cartControllers.AddToCart(deps.Store))
		cart.PUT("/item/:id", cartControllers.UpdateCartItem(deps.Store))
		cart.DELETE("/item/:id", cartControllers.RemoveFromCart(deps.Store))
		cart.DELETE("/clear/:userId", cartControllers.ClearCart(deps.Store))
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("/:userId", wishlistControllers.GetWishlistItems(deps.Store))
		wishlist.POST("", wishlistControllers.AddToWishlist(deps.Store))
		wishlist.DELETE("/:userId/:productId", wishlistControllers.RemoveFromWishlist(deps.Store))
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/:productId", reviewControllers.GetReviews(deps.Store))
		reviews.POST("", reviewControllers.CreateReview(deps.Store))
	}
}
