package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func PlanRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	planController := controllers.NewPlanController()

	plans := r.Group("/plans")
	{
		// Public plan routes
		plans.GET("", planController.GetPlans)
		plans.GET("/:id", planController.GetPlan)

		// Admin plan routes
		admin := plans.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.POST("", planController.CreatePlan)
			admin.PUT("/:id", planController.UpdatePlan)
			admin.DELETE("/:id", planController.DeletePlan)
		}
	}
}
