package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type BannerController struct {
	bannerService *services.BannerService
}

func NewBannerController() *BannerController {
	return NewBannerControllerWithService(services.NewBannerService())
}

// NewBannerControllerWithService injects the service, for tests.
func NewBannerControllerWithService(svc *services.BannerService) *BannerController {
	return &BannerController{bannerService: svc}
}

func (bc *BannerController) GetBanners(c *gin.Context) {
	banners, err := bc.bannerService.GetBanners(false)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get banners")
		return
	}

	utils.SuccessResponse(c, "Banners retrieved successfully", banners)
}

// GetActiveBanners returns only the banners currently shown on the site.
func (bc *BannerController) GetActiveBanners(c *gin.Context) {
	banners, err := bc.bannerService.GetBanners(true)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get banners")
		return
	}

	utils.SuccessResponse(c, "Active banners retrieved successfully", banners)
}

func (bc *BannerController) GetBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if !utils.IsValidObjectID(bannerID) {
		utils.BadRequestResponse(c, "Invalid banner ID")
		return
	}

	objID, _ := utils.StringToObjectID(bannerID)
	banner, err := bc.bannerService.GetBanner(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Banner not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get banner")
		return
	}

	utils.SuccessResponse(c, "Banner retrieved successfully", banner)
}

func (bc *BannerController) CreateBanner(c *gin.Context) {
	req, ok := bc.bindBannerRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "banners")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	banner, err := bc.bannerService.CreateBanner(req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		utils.InternalServerErrorResponse(c, "Failed to create banner")
		return
	}

	utils.CreatedResponse(c, "Banner created successfully", banner)
}

func (bc *BannerController) UpdateBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if !utils.IsValidObjectID(bannerID) {
		utils.BadRequestResponse(c, "Invalid banner ID")
		return
	}
	objID, _ := utils.StringToObjectID(bannerID)

	req, ok := bc.bindBannerRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "banners")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	banner, oldMediaID, err := bc.bannerService.UpdateBanner(objID, req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Banner not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update banner")
		return
	}

	discardMedia(c, oldMediaID)
	utils.SuccessResponse(c, "Banner updated successfully", banner)
}

// ToggleBanner flips the visibility flag and nothing else.
func (bc *BannerController) ToggleBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if !utils.IsValidObjectID(bannerID) {
		utils.BadRequestResponse(c, "Invalid banner ID")
		return
	}
	objID, _ := utils.StringToObjectID(bannerID)

	banner, err := bc.bannerService.ToggleBanner(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Banner not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to toggle banner")
		return
	}

	utils.SuccessResponse(c, "Banner toggled successfully", banner)
}

func (bc *BannerController) DeleteBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if !utils.IsValidObjectID(bannerID) {
		utils.BadRequestResponse(c, "Invalid banner ID")
		return
	}
	objID, _ := utils.StringToObjectID(bannerID)

	mediaID, err := bc.bannerService.DeleteBanner(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Banner not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete banner")
		return
	}

	discardMedia(c, mediaID)
	utils.SuccessResponse(c, "Banner deleted successfully", nil)
}

func (bc *BannerController) bindBannerRequest(c *gin.Context) (*models.BannerRequest, bool) {
	var req models.BannerRequest

	if isMultipart(c) {
		req = models.BannerRequest{
			Title:       c.PostForm("title"),
			Subtitle:    c.PostForm("subtitle"),
			Button1Text: c.PostForm("button1Text"),
			Button1Link: c.PostForm("button1Link"),
			Button2Text: c.PostForm("button2Text"),
			Button2Link: c.PostForm("button2Link"),
			BgColor:     c.PostForm("bgColor"),
			IsActive:    formBool(c, "isActive"),
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return nil, false
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return nil, false
	}

	return &req, true
}
