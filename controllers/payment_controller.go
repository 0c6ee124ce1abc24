package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController() *PaymentController {
	return &PaymentController{
		paymentService: services.NewPaymentService(),
	}
}

func (pc *PaymentController) GetPaymentMethods(c *gin.Context) {
	methods, err := pc.paymentService.GetPaymentMethods()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get payment methods")
		return
	}

	utils.SuccessResponse(c, "Payment methods retrieved successfully", methods)
}

func (pc *PaymentController) GetPaymentMethod(c *gin.Context) {
	methodID := c.Param("id")
	if !utils.IsValidObjectID(methodID) {
		utils.BadRequestResponse(c, "Invalid payment method ID")
		return
	}

	objID, _ := utils.StringToObjectID(methodID)
	method, err := pc.paymentService.GetPaymentMethod(objID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Payment method not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get payment method")
		return
	}

	utils.SuccessResponse(c, "Payment method retrieved successfully", method)
}

func (pc *PaymentController) CreatePaymentMethod(c *gin.Context) {
	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	method, err := pc.paymentService.CreatePaymentMethod(&req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create payment method")
		return
	}

	utils.CreatedResponse(c, "Payment method created successfully", method)
}

func (pc *PaymentController) UpdatePaymentMethod(c *gin.Context) {
	methodID := c.Param("id")
	if !utils.IsValidObjectID(methodID) {
		utils.BadRequestResponse(c, "Invalid payment method ID")
		return
	}
	objID, _ := utils.StringToObjectID(methodID)

	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	method, err := pc.paymentService.UpdatePaymentMethod(objID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Payment method not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update payment method")
		return
	}

	utils.SuccessResponse(c, "Payment method updated successfully", method)
}

func (pc *PaymentController) DeletePaymentMethod(c *gin.Context) {
	methodID := c.Param("id")
	if !utils.IsValidObjectID(methodID) {
		utils.BadRequestResponse(c, "Invalid payment method ID")
		return
	}
	objID, _ := utils.StringToObjectID(methodID)

	if err := pc.paymentService.DeletePaymentMethod(objID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Payment method not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete payment method")
		return
	}

	utils.SuccessResponse(c, "Payment method deleted successfully", nil)
}
