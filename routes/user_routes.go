package routes

import (
	"fibresite/controllers"
	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.RouterGroup, lookup middleware.SessionLookup) {
	userController := controllers.NewUserController()

	users := r.Group("/users")
	{
		// Public reduced listing
		users.GET("/public", userController.GetPublicUsers)

		// Admin user management
		admin := users.Group("")
		admin.Use(adminOnly(lookup)...)
		{
			admin.GET("", userController.GetUsers)
			admin.PUT("/:id/role", userController.UpdateUserRole)
			admin.DELETE("/:id", userController.DeleteUser)
		}
	}
}
