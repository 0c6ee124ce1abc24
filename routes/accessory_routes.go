package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func AccessoryRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	accessoryController := controllers.NewAccessoryController()

	accessories := r.Group("/accessories")
	{
		// Public accessory routes
		accessories.GET("", accessoryController.GetAccessories)
		accessories.GET("/active", accessoryController.GetActiveAccessories)
		accessories.GET("/:id", accessoryController.GetAccessory)

		// Admin accessory routes
		admin := accessories.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.POST("", accessoryController.CreateAccessory)
			admin.PUT("/:id", accessoryController.UpdateAccessory)
			admin.PATCH("/:id/toggle", accessoryController.ToggleAccessory)
			admin.DELETE("/:id", accessoryController.DeleteAccessory)
		}
	}
}
