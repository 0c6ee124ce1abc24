package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func CoverageRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	coverageController := controllers.NewCoverageController()

	// Coverage management is admin dashboard only.
	coverage := r.Group("/coverage")
	coverage.Use(adminOnly(lookup)...)
	{
		coverage.GET("", coverageController.GetCoverageAreas)
		coverage.GET("/:id", coverageController.GetCoverageArea)
		coverage.POST("", coverageController.CreateCoverageArea)
		coverage.PUT("/:id", coverageController.UpdateCoverageArea)
		coverage.DELETE("/:id", coverageController.DeleteCoverageArea)
	}
}
