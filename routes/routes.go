package routes

import (
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every API group onto the engine. The session lookup is
// injected so tests can stub authentication.
func SetupRoutes(r *gin.Engine, lookup middleware.SessionLookup) {
	// Global middleware (Recovery is installed by the router builder)
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())

	api := r.Group("/api")
	{
		AuthRoutes(api)
		PlanRoutes(api, lookup)
		ShopRoutes(api, lookup)
		CoverageRoutes(api, lookup)
		BannerRoutes(api, lookup)
		FAQRoutes(api, lookup)
		PaymentRoutes(api, lookup)
		AccessoryRoutes(api, lookup)
		SettingsRoutes(api, lookup)
		AboutRoutes(api, lookup)
		UserRoutes(api, lookup)
		MailRoutes(api)
	}

	AdminPageRoutes(r, lookup)
}

// adminOnly builds the middleware chain for admin-gated routes.
func adminOnly(lookup middleware.SessionLookup) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.SessionAuth(lookup),
		middleware.RequireAdmin(),
	}
}
