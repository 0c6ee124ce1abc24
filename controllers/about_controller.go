package controllers

import (
	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type AboutController struct {
	aboutService *services.AboutService
}

func NewAboutController() *AboutController {
	return &AboutController{
		aboutService: services.NewAboutService(),
	}
}

// GetAbout returns the about section, seeding defaults on first access.
func (ac *AboutController) GetAbout(c *gin.Context) {
	about, err := ac.aboutService.GetAbout()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get about section")
		return
	}

	utils.SuccessResponse(c, "About section retrieved successfully", about)
}

// UpdateAbout replaces the text content and handles the optional image
// swap or removal for each of the two slots.
func (ac *AboutController) UpdateAbout(c *gin.Context) {
	var req models.AboutRequest

	if isMultipart(c) {
		req = models.AboutRequest{
			Title:       c.PostForm("title"),
			Subtitle:    c.PostForm("subtitle"),
			Description: c.PostForm("description"),
		}
		if err := formJSON(c, "featureBoxes", &req.FeatureBoxes); err != nil {
			utils.BadRequestResponse(c, "Invalid feature boxes format")
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	mainAsset, err := mediaFromRequest(c, "mainImage", "about")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	secondaryAsset, err := mediaFromRequest(c, "secondaryImage", "about")
	if err != nil {
		discardMedia(c, assetID(mainAsset))
		respondMediaError(c, err)
		return
	}

	about, staleMedia, err := ac.aboutService.UpdateAbout(&services.AboutUpdate{
		Request:              &req,
		MainAsset:            mainAsset,
		SecondaryAsset:       secondaryAsset,
		DeleteMainImage:      formBool(c, "deleteMainImage"),
		DeleteSecondaryImage: formBool(c, "deleteSecondaryImage"),
	})
	if err != nil {
		discardMedia(c, assetID(mainAsset))
		discardMedia(c, assetID(secondaryAsset))
		utils.InternalServerErrorResponse(c, "Failed to update about section")
		return
	}

	for _, mediaID := range staleMedia {
		discardMedia(c, mediaID)
	}

	utils.SuccessResponse(c, "About section updated successfully", about)
}
