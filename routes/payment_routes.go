package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/premstore/storefront-api/controllers/payment"
)

func SetupPaymentRoutes(api *gin.RouterGroup, deps *Deps) {
	// Stripe paths stay at the top level; storefront clients call them as-is.
	api.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent())
	api.POST("/stripe-webhook", paymentControllers.StripeWebhook())

	razorpay := api.Group("/payments/razorpay")
	{
		razorpay.POST("/create-order", paymentControllers.CreateRazorpayOrder(deps.Payments, deps.RazorpayKeyID))
		razorpay.POST("/verify", paymentControllers.VerifyRazorpayPayment(deps.Payments))
		razorpay.POST("/cancel", paymentControllers.CancelRazorpayPayment(deps.Payments))
	}
}
