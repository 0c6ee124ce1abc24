package controllers

import (
	"errors"

	"fibresite/config"
	"fibresite/middleware"
	"fibresite/models"
	"fibresite/services"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// Login verifies credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, sessionID, err := ac.authService.Login(req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		utils.InternalServerErrorResponse(c, "Login failed")
		return
	}

	ac.setSessionCookie(c, sessionID)
	utils.SuccessResponse(c, "Login successful", gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Signup registers a new account and logs it in.
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, sessionID, err := ac.authService.Signup(req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ConflictResponse(c, "Email is already registered")
			return
		}
		utils.InternalServerErrorResponse(c, "Signup failed")
		return
	}

	ac.setSessionCookie(c, sessionID)
	utils.CreatedResponse(c, "Account created successfully", gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout deletes the server-side session and clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
		if err := ac.authService.Logout(sessionID); err != nil {
			utils.InternalServerErrorResponse(c, "Logout failed")
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", config.AppConfig.IsProduction(), true)
	utils.SuccessResponse(c, "Logged out successfully", nil)
}

// Status reports whether the request carries a live session.
func (ac *AuthController) Status(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookie)
	if err != nil || sessionID == "" {
		utils.SuccessResponse(c, "Authentication status", gin.H{"isAuthenticated": false})
		return
	}

	user, err := ac.authService.ResolveSession(sessionID)
	if err != nil {
		utils.SuccessResponse(c, "Authentication status", gin.H{"isAuthenticated": false})
		return
	}

	utils.SuccessResponse(c, "Authentication status", gin.H{
		"isAuthenticated": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := int(config.AppConfig.SessionMaxAge.Seconds())
	c.SetCookie(middleware.SessionCookie, sessionID, maxAge, "/", "", config.AppConfig.IsProduction(), true)
}
