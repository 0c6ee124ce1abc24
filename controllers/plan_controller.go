package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	planService *services.PlanService
}

func NewPlanController() *PlanController {
	return NewPlanControllerWithService(services.NewPlanService())
}

// NewPlanControllerWithService injects the service, for tests.
func NewPlanControllerWithService(svc *services.PlanService) *PlanController {
	return &PlanController{planService: svc}
}

// GetPlans returns all plans ordered by display position.
func (pc *PlanController) GetPlans(c *gin.Context) {
	plans, err := pc.planService.GetPlans()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get plans")
		return
	}

	utils.SuccessResponse(c, "Plans retrieved successfully", plans)
}

func (pc *PlanController) GetPlan(c *gin.Context) {
	planID := c.Param("id")
	if !utils.IsValidObjectID(planID) {
		utils.BadRequestResponse(c, "Invalid plan ID")
		return
	}

	objID, _ := utils.StringToObjectID(planID)
	plan, err := pc.planService.GetPlan(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Plan not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get plan")
		return
	}

	utils.SuccessResponse(c, "Plan retrieved successfully", plan)
}

func (pc *PlanController) CreatePlan(c *gin.Context) {
	req, ok := pc.bindPlanRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "plans")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	plan, err := pc.planService.CreatePlan(req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		utils.InternalServerErrorResponse(c, "Failed to create plan")
		return
	}

	utils.CreatedResponse(c, "Plan created successfully", plan)
}

func (pc *PlanController) UpdatePlan(c *gin.Context) {
	planID := c.Param("id")
	if !utils.IsValidObjectID(planID) {
		utils.BadRequestResponse(c, "Invalid plan ID")
		return
	}
	objID, _ := utils.StringToObjectID(planID)

	req, ok := pc.bindPlanRequest(c)
	if !ok {
		return
	}

	asset, err := mediaFromRequest(c, "image", "plans")
	if err != nil {
		respondMediaError(c, err)
		return
	}

	plan, oldMediaID, err := pc.planService.UpdatePlan(objID, req, asset)
	if err != nil {
		discardMedia(c, assetID(asset))
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Plan not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update plan")
		return
	}

	discardMedia(c, oldMediaID)
	utils.SuccessResponse(c, "Plan updated successfully", plan)
}

func (pc *PlanController) DeletePlan(c *gin.Context) {
	planID := c.Param("id")
	if !utils.IsValidObjectID(planID) {
		utils.BadRequestResponse(c, "Invalid plan ID")
		return
	}
	objID, _ := utils.StringToObjectID(planID)

	mediaID, err := pc.planService.DeletePlan(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Plan not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete plan")
		return
	}

	discardMedia(c, mediaID)
	utils.SuccessResponse(c, "Plan deleted successfully", nil)
}

func (pc *PlanController) bindPlanRequest(c *gin.Context) (*models.PlanRequest, bool) {
	var req models.PlanRequest

	if isMultipart(c) {
		req = models.PlanRequest{
			Name:             c.PostForm("name"),
			Type:             c.PostForm("type"),
			Speed:            formInt(c, "speed"),
			Price:            formInt(c, "price"),
			SupportedDevices: formInt(c, "supportedDevices"),
			Features:         formStrings(c, "features"),
			IsPopular:        formBool(c, "isPopular"),
			Position:         formInt(c, "position"),
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
