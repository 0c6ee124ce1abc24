package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func ShopRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	shopController := controllers.NewShopController()

	// All shop routes are admin dashboard only.
	shops := r.Group("/shops")
	shops.Use(adminOnly(lookup)...)
	{
		shops.GET("", shopController.GetShops)
		shops.GET("/:id", shopController.GetShop)
		shops.POST("", shopController.CreateShop)
		shops.PUT("/:id", shopController.UpdateShop)
		shops.DELETE("/:id", shopController.DeleteShop)
	}
}
