package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	paymentController := controllers.NewPaymentController()

	payments := r.Group("/payments")
	{
		// Public payment method routes
		payments.GET("", paymentController.GetPaymentMethods)
		payments.GET("/:id", paymentController.GetPaymentMethod)

		// Admin payment method routes
		admin := payments.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.POST("", paymentController.CreatePaymentMethod)
			admin.PUT("/:id", paymentController.UpdatePaymentMethod)
			admin.DELETE("/:id", paymentController.DeletePaymentMethod)
		}
	}
}
