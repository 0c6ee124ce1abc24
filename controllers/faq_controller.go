package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type FAQController struct {
	faqService *services.FAQService
}

func NewFAQController() *FAQController {
	return &FAQController{
		faqService: services.NewFAQService(),
	}
}

// GetFAQs returns every entry grouped by category order.
func (fc *FAQController) GetFAQs(c *gin.Context) {
	faqs, err := fc.faqService.GetFAQs()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get FAQs")
		return
	}

	utils.SuccessResponse(c, "FAQs retrieved successfully", faqs)
}

func (fc *FAQController) GetFAQ(c *gin.Context) {
	faqID := c.Param("id")
	if !utils.IsValidObjectID(faqID) {
		utils.BadRequestResponse(c, "Invalid FAQ ID")
		return
	}

	objID, _ := utils.StringToObjectID(faqID)
	faq, err := fc.faqService.GetFAQ(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get FAQ")
		return
	}

	utils.SuccessResponse(c, "FAQ retrieved successfully", faq)
}

// CreateFAQs inserts a batch of entries under one category.
func (fc *FAQController) CreateFAQs(c *gin.Context) {
	var req models.FAQBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	faqs, err := fc.faqService.CreateCategory(&req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create FAQs")
		return
	}

	utils.CreatedResponse(c, "FAQs created successfully", faqs)
}

// UpdateFAQs replaces the whole category the target entry belongs to.
func (fc *FAQController) UpdateFAQs(c *gin.Context) {
	faqID := c.Param("id")
	if !utils.IsValidObjectID(faqID) {
		utils.BadRequestResponse(c, "Invalid FAQ ID")
		return
	}
	objID, _ := utils.StringToObjectID(faqID)

	var req models.FAQBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	faqs, err := fc.faqService.ReplaceCategory(objID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update FAQs")
		return
	}

	utils.SuccessResponse(c, "FAQs updated successfully", faqs)
}

func (fc *FAQController) DeleteFAQ(c *gin.Context) {
	faqID := c.Param("id")
	if !utils.IsValidObjectID(faqID) {
		utils.BadRequestResponse(c, "Invalid FAQ ID")
		return
	}
	objID, _ := utils.StringToObjectID(faqID)

	if err := fc.faqService.DeleteFAQ(objID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete FAQ")
		return
	}

	utils.SuccessResponse(c, "FAQ deleted successfully", nil)
}
