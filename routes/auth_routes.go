package routes

import (
	"fibresite/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.RouterGroup) {
	authController := controllers.NewAuthController()

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/signup", authController.Signup)
		auth.GET("/logout", authController.Logout)
		auth.GET("/status", authController.Status)
	}
}
