package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/premstore/storefront-api/checkout"
	healthControllers "github.com/premstore/storefront-api/controllers/health"
	"github.com/premstore/storefront-api/payment"
	"github.com/premstore/storefront-api/storage"
)

// Deps carries everything the route groups need. Store is the primary
// repository (database-backed in production); Mock is the seeded in-memory
// fallback served when the primary is unreachable.
type Deps struct {
	Store         storage.Store
	Mock          storage.Store
	Checkout      *checkout.Manager
	Payments      *payment.Registry
	RazorpayKeyID string
}

// SetupRoutes is the single entry point that wires every route group.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	api := r.Group("/api")

	api.GET("/health", healthControllers.Check(deps.Store))

	SetupAuthRoutes(api, deps)
	SetupCatalogRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupPaymentRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}
