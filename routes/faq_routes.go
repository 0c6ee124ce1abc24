package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func FAQRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	faqController := controllers.NewFAQController()

	faqs := r.Group("/faqs")
	{
		// Public FAQ routes
		faqs.GET("", faqController.GetFAQs)
		faqs.GET("/:id", faqController.GetFAQ)

		// Admin FAQ routes
		admin := faqs.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.POST("", faqController.CreateFAQs)
			admin.PUT("/:id", faqController.UpdateFAQs)
			admin.DELETE("/:id", faqController.DeleteFAQ)
		}
	}
}
