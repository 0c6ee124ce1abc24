package controllers

import (
	"errors"

	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		userService: services.NewUserService(),
	}
}

// GetUsers lists all accounts for the admin dashboard.
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userService.GetUsers()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get users")
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// GetPublicUsers lists accounts in the reduced public shape.
func (uc *UserController) GetPublicUsers(c *gin.Context) {
	users, err := uc.userService.GetPublicUsers()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get users")
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// UpdateUserRole switches an account between admin and user.
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")
	if !utils.IsValidObjectID(userID) {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}
	objID, _ := utils.StringToObjectID(userID)

	var req models.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := uc.userService.UpdateRole(objID, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update user role")
		return
	}

	utils.SuccessResponse(c, "User role updated successfully", user)
}

// DeleteUser removes a non-admin account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if !utils.IsValidObjectID(userID) {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}
	objID, _ := utils.StringToObjectID(userID)

	if err := uc.userService.DeleteUser(objID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		if errors.Is(err, services.ErrAdminProtected) {
			utils.ForbiddenResponse(c, "Admin users cannot be deleted")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}
