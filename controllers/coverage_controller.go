package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type CoverageController struct {
	coverageService *services.CoverageService
}

func NewCoverageController() *CoverageController {
	return &CoverageController{
		coverageService: services.NewCoverageService(),
	}
}

func (cc *CoverageController) GetCoverageAreas(c *gin.Context) {
	areas, err := cc.coverageService.GetCoverageAreas()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get coverage areas")
		return
	}

	utils.SuccessResponse(c, "Coverage areas retrieved successfully", areas)
}

func (cc *CoverageController) GetCoverageArea(c *gin.Context) {
	areaID := c.Param("id")
	if !utils.IsValidObjectID(areaID) {
		utils.BadRequestResponse(c, "Invalid coverage area ID")
		return
	}

	objID, _ := utils.StringToObjectID(areaID)
	area, err := cc.coverageService.GetCoverageArea(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Coverage area not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get coverage area")
		return
	}

	utils.SuccessResponse(c, "Coverage area retrieved successfully", area)
}

func (cc *CoverageController) CreateCoverageArea(c *gin.Context) {
	var req models.CoverageAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	area, err := cc.coverageService.CreateCoverageArea(&req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create coverage area")
		return
	}

	utils.CreatedResponse(c, "Coverage area created successfully", area)
}

func (cc *CoverageController) UpdateCoverageArea(c *gin.Context) {
	areaID := c.Param("id")
	if !utils.IsValidObjectID(areaID) {
		utils.BadRequestResponse(c, "Invalid coverage area ID")
		return
	}
	objID, _ := utils.StringToObjectID(areaID)

	var req models.CoverageAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	area, err := cc.coverageService.UpdateCoverageArea(objID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Coverage area not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update coverage area")
		return
	}

	utils.SuccessResponse(c, "Coverage area updated successfully", area)
}

func (cc *CoverageController) DeleteCoverageArea(c *gin.Context) {
	areaID := c.Param("id")
	if !utils.IsValidObjectID(areaID) {
		utils.BadRequestResponse(c, "Invalid coverage area ID")
		return
	}
	objID, _ := utils.StringToObjectID(areaID)

	if err := cc.coverageService.DeleteCoverageArea(objID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Coverage area not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete coverage area")
		return
	}

	utils.SuccessResponse(c, "Coverage area deleted successfully", nil)
}
