package controllers

import (
	"RadiologyCenter/handlers"
	"RadiologyCenter/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes all authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no authentication required
	router.POST("/api/auth/register", ac.Handler.Register)
	router.POST("/api/auth/login", ac.Handler.Login)
	router.POST("/api/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/api/auth/reset-password", ac.Handler.ResetPassword)

	// Protected routes: require a valid token
	authGroup := router.Group("/api/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logout", ac.Handler.Logout)
		authGroup.POST("/change-password", ac.Handler.ChangePassword)
	}
}
