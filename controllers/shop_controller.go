package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	shopService *services.ShopService
}

func NewShopController() *ShopController {
	return &ShopController{
		shopService: services.NewShopService(),
	}
}

func (sc *ShopController) GetShops(c *gin.Context) {
	shops, err := sc.shopService.GetShops()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get shops")
		return
	}

	utils.SuccessResponse(c, "Shops retrieved successfully", shops)
}

func (sc *ShopController) GetShop(c *gin.Context) {
	shopID := c.Param("id")
	if !utils.IsValidObjectID(shopID) {
		utils.BadRequestResponse(c, "Invalid shop ID")
		return
	}

	objID, _ := utils.StringToObjectID(shopID)
	shop, err := sc.shopService.GetShop(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Shop not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get shop")
		return
	}

	utils.SuccessResponse(c, "Shop retrieved successfully", shop)
}

func (sc *ShopController) CreateShop(c *gin.Context) {
	req, ok := sc.bindShopRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "shops")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	shop, err := sc.shopService.CreateShop(req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		utils.InternalServerErrorResponse(c, "Failed to create shop")
		return
	}

	utils.CreatedResponse(c, "Shop created successfully", shop)
}

func (sc *ShopController) UpdateShop(c *gin.Context) {
	shopID := c.Param("id")
	if !utils.IsValidObjectID(shopID) {
		utils.BadRequestResponse(c, "Invalid shop ID")
		return
	}
	objID, _ := utils.StringToObjectID(shopID)

	req, ok := sc.bindShopRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "shops")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	shop, oldMediaID, err := sc.shopService.UpdateShop(objID, req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Shop not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update shop")
		return
	}

	discardMedia(c, oldMediaID)
	utils.SuccessResponse(c, "Shop updated successfully", shop)
}

func (sc *ShopController) DeleteShop(c *gin.Context) {
	shopID := c.Param("id")
	if !utils.IsValidObjectID(shopID) {
		utils.BadRequestResponse(c, "Invalid shop ID")
		return
	}
	objID, _ := utils.StringToObjectID(shopID)

	mediaID, err := sc.shopService.DeleteShop(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Shop not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete shop")
		return
	}

	discardMedia(c, mediaID)
	utils.SuccessResponse(c, "Shop deleted successfully", nil)
}

func (sc *ShopController) bindShopRequest(c *gin.Context) (*models.ShopRequest, bool) {
	var req models.ShopRequest

	if isMultipart(c) {
		req = models.ShopRequest{
			Name:          c.PostForm("name"),
			Address:       c.PostForm("address"),
			City:          c.PostForm("city"),
			ContactNumber: c.PostForm("contactNumber"),
			Location: models.GeoPoint{
				Lat: formFloat(c, "lat"),
				Lng: formFloat(c, "lng"),
			},
		}
		if err := formJSON(c, "location", &req.Location); err != nil {
			utils.BadRequestResponse(c, "Invalid location format")
			return nil, false
		}
		var hours models.OpeningHours
		if err := formJSON(c, "openingHours", &hours); err != nil {
			utils.BadRequestResponse(c, "Invalid opening hours format")
			return nil, false
		}
		if c.PostForm("openingHours") != "" {
			req.OpeningHours = &hours
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
