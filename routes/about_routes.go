package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func AboutRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	aboutController := controllers.NewAboutController()

	about := r.Group("/about")
	{
		about.GET("", aboutController.GetAbout)

		admin := about.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.PUT("", aboutController.UpdateAbout)
		}
	}
}
