package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type AccessoryController struct {
	accessoryService *services.AccessoryService
}

func NewAccessoryController() *AccessoryController {
	return &AccessoryController{
		accessoryService: services.NewAccessoryService(),
	}
}

func (ac *AccessoryController) GetAccessories(c *gin.Context) {
	accessories, err := ac.accessoryService.GetAccessories(false)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get accessories")
		return
	}

	utils.SuccessResponse(c, "Accessories retrieved successfully", accessories)
}

func (ac *AccessoryController) GetActiveAccessories(c *gin.Context) {
	accessories, err := ac.accessoryService.GetAccessories(true)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get accessories")
		return
	}

	utils.SuccessResponse(c, "Active accessories retrieved successfully", accessories)
}

func (ac *AccessoryController) GetAccessory(c *gin.Context) {
	accessoryID := c.Param("id")
	if !utils.IsValidObjectID(accessoryID) {
		utils.BadRequestResponse(c, "Invalid accessory ID")
		return
	}

	objID, _ := utils.StringToObjectID(accessoryID)
	accessory, err := ac.accessoryService.GetAccessory(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Accessory not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get accessory")
		return
	}

	utils.SuccessResponse(c, "Accessory retrieved successfully", accessory)
}

func (ac *AccessoryController) CreateAccessory(c *gin.Context) {
	req, ok := ac.bindAccessoryRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "accessories")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	accessory, err := ac.accessoryService.CreateAccessory(req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		utils.InternalServerErrorResponse(c, "Failed to create accessory")
		return
	}

	utils.CreatedResponse(c, "Accessory created successfully", accessory)
}

func (ac *AccessoryController) UpdateAccessory(c *gin.Context) {
	accessoryID := c.Param("id")
	if !utils.IsValidObjectID(accessoryID) {
		utils.BadRequestResponse(c, "Invalid accessory ID")
		return
	}
	objID, _ := utils.StringToObjectID(accessoryID)

	req, ok := ac.bindAccessoryRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "accessories")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	accessory, oldMediaID, err := ac.accessoryService.UpdateAccessory(objID, req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Accessory not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update accessory")
		return
	}

	discardMedia(c, oldMediaID)
	utils.SuccessResponse(c, "Accessory updated successfully", accessory)
}

func (ac *AccessoryController) ToggleAccessory(c *gin.Context) {
	accessoryID := c.Param("id")
	if !utils.IsValidObjectID(accessoryID) {
		utils.BadRequestResponse(c, "Invalid accessory ID")
		return
	}
	objID, _ := utils.StringToObjectID(accessoryID)

	accessory, err := ac.accessoryService.ToggleAccessory(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Accessory not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to toggle accessory")
		return
	}

	utils.SuccessResponse(c, "Accessory toggled successfully", accessory)
}

func (ac *AccessoryController) DeleteAccessory(c *gin.Context) {
	accessoryID := c.Param("id")
	if !utils.IsValidObjectID(accessoryID) {
		utils.BadRequestResponse(c, "Invalid accessory ID")
		return
	}
	objID, _ := utils.StringToObjectID(accessoryID)

	mediaID, err := ac.accessoryService.DeleteAccessory(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Accessory not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete accessory")
		return
	}

	discardMedia(c, mediaID)
	utils.SuccessResponse(c, "Accessory deleted successfully", nil)
}

func (ac *AccessoryController) bindAccessoryRequest(c *gin.Context) (*models.AccessoryRequest, bool) {
	var req models.AccessoryRequest

	if isMultipart(c) {
		req = models.AccessoryRequest{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Price:       formInt(c, "price"),
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
