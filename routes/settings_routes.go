package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func SettingsRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	settingsController := controllers.NewSettingsController()

	settings := r.Group("/settings")
	{
		settings.GET("", settingsController.GetSettings)

		admin := settings.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.PUT("", settingsController.UpdateSettings)
		}
	}
}
