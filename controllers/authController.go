package controllers

import (
	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler.
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the
// router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no staff session required.
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/send-reset-code", ac.Handler.RequestPasswordReset)
	router.POST("/auth/reset-password", ac.Handler.ResetPassword)

	// Protected routes: require a valid staff session.
	authGroup := router.Group("/auth").Use(middlewares.StaffAuthMiddleware())
	{
		authGroup.POST("/logout", ac.Handler.Logout)
	}
}
