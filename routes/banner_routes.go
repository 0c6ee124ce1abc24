package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func BannerRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	bannerController := controllers.NewBannerController()

	banners := r.Group("/banners")
	{
		// Public banner routes
		banners.GET("", bannerController.GetBanners)
		banners.GET("/active", bannerController.GetActiveBanners)
		banners.GET("/:id", bannerController.GetBanner)

		// Admin banner routes
		admin := banners.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.POST("", bannerController.CreateBanner)
			admin.PUT("/:id", bannerController.UpdateBanner)
			admin.PATCH("/:id/toggle", bannerController.ToggleBanner)
			admin.DELETE("/:id", bannerController.DeleteBanner)
		}
	}
}
