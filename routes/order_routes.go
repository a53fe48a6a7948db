package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/premstore/storefront-api/controllers/order"
	transactionControllers "github.com/premstore/storefront-api/controllers/transaction"
)

// SetupOrderRoutes wires orders, the checkout workflow and transactions.
func SetupOrderRoutes(api *gin.RouterGroup, deps *Deps) {
	orders := api.Group("/orders")
	{
		orders.GET("/user/:userId", orderControllers.GetUserOrders(deps.Store))
		orders.GET("/detail/:orderId", orderControllers.GetOrderByID(deps.Store))
		orders.POST("", orderControllers.CreateOrder(deps.Store))
	}

	checkout := api.Group("/checkout")
	{
		checkout.POST("", orderControllers.StartCheckout(deps.Checkout, deps.Store))
		checkout.GET("/:id", orderControllers.GetCheckout(deps.Checkout))
		checkout.POST("/:id/shipping", orderControllers.SubmitShipping(deps.Checkout))
		checkout.POST("/:id/back", orderControllers.Back(deps.Checkout))
		checkout.POST("/:id/place", orderControllers.PlaceOrder(deps.Checkout, deps.Store))
	}

	api.POST("/transactions", transactionControllers.CreateTransaction(deps.Store))
	api.PUT("/transactions/:orderId", transactionControllers.UpdateTransaction(deps.Store))
	api.POST("/transaction-events", transactionControllers.CreateTransactionEvent(deps.Store))
}
