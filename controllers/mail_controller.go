package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type MailController struct {
	mailService *services.MailService
}

func NewMailController() *MailController {
	return &MailController{
		mailService: services.NewMailService(),
	}
}

// SendMail relays a contact-form submission to the routed mailbox.
func (mc *MailController) SendMail(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := mc.mailService.SendContactMail(&req); err != nil {
		switch {
		case errors.Is(err, services.ErrMailAuth):
			utils.InternalServerErrorResponse(c, "Email authentication failed")
		case errors.Is(err, services.ErrMailConnection):
			utils.InternalServerErrorResponse(c, "Could not connect to email server")
		default:
			utils.InternalServerErrorResponse(c, "Failed to send email")
		}
		return
	}

	utils.SuccessResponse(c, "Email sent successfully", nil)
}
