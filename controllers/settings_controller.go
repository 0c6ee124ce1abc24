package controllers

import (
	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *services.SettingsService
}

func NewSettingsController() *SettingsController {
	return &SettingsController{
		settingsService: services.NewSettingsService(),
	}
}

// GetSettings returns the site settings, seeding defaults on first access.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.settingsService.GetSettings()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get settings")
		return
	}

	utils.SuccessResponse(c, "Settings retrieved successfully", settings)
}

// UpdateSettings patches only the fields present in the request body.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	settings, err := sc.settingsService.UpdateSettings(&req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to update settings")
		return
	}

	utils.SuccessResponse(c, "Settings updated successfully", settings)
}
