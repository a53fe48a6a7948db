package paymentControllers

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"
)

const devStripeKey = "sk_test_dummy_key_for_development"

type CreatePaymentIntentRequest struct {
	Amount   float64           `json:"amount" binding:"required"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

func stripeDevMode() bool {
	key := os.Getenv("STRIPE_SECRET_KEY")
	return key == "" || key == devStripeKey
}

// CreatePaymentIntent creates a Stripe payment intent for a one-time payment.
// With dev credentials it returns a synthesized client secret instead of
// calling Stripe.
// POST /api/create-payment-intent
func CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data: " + err.Error()})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		if stripeDevMode() {
			id := fmt.Sprintf("pi_test_%d", time.Now().UnixMilli())
			c.JSON(http.StatusOK, gin.H{
				"clientSecret":    fmt.Sprintf("%s_secret_%09d", id, rand.Intn(1_000_000_000)),
				"paymentIntentId": id,
			})
			return
		}

		stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Error creating payment intent: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}

// StripeWebhook receives provider events. With dev credentials or no webhook
// secret it only acknowledges; otherwise the signature is verified before the
// event is trusted.
// POST /api/stripe-webhook
func StripeWebhook() gin.HandlerFunc {
	return func(c *gin.Context) {
		if stripeDevMode() {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read webhook body"})
			return
		}

		sig := c.GetHeader("Stripe-Signature")
		endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		if sig == "" || endpointSecret == "" {
			c.String(http.StatusBadRequest, "Missing signature or webhook secret")
			return
		}

		event, err := webhook.ConstructEvent(payload, sig, endpointSecret)
		if err != nil {
			c.String(http.StatusBadRequest, "Webhook signature verification failed: "+err.Error())
			return
		}

		switch event.Type {
		case "payment_intent.succeeded":
			log.Printf("✅ PaymentIntent succeeded: %s", event.ID)
		case "payment_intent.payment_failed":
			log.Printf("❌ PaymentIntent failed: %s", event.ID)
		default:
			log.Printf("Unhandled Stripe event type %s", event.Type)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
