package routes

import (
	"fibresite/controllers"

	"github.com/gin-gonic/gin"
)

func MailRoutes(r *gin.RouterGroup) {
	mailController := controllers.NewMailController()

	mail := r.Group("/mail")
	{
		mail.POST("/send-mail", mailController.SendMail)
	}
}
