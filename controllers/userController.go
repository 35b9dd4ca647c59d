package controllers

import (
	"RadiologyCenter/handlers"
	"RadiologyCenter/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the user-administration endpoints,
// restricted to Administrators.
func SetupUserRoutes(router *gin.Engine, userHandler *handlers.UserHandler) {
	users := router.Group("/api/user")
	users.Use(middlewares.TokenAuthMiddleware())
	users.Use(middlewares.RoleAuthMiddleware("Administrator"))
	{
		users.GET("", userHandler.GetAllUsers)
		users.GET("/:id", userHandler.GetUserByID)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.POST("/:id/activate", userHandler.ActivateUser)
		users.POST("/:id/deactivate", userHandler.DeactivateUser)
	}

	audit := router.Group("/api/audit")
	audit.Use(middlewares.TokenAuthMiddleware())
	audit.Use(middlewares.RoleAuthMiddleware("Administrator"))
	{
		audit.GET("/:entity/:entityId", userHandler.GetAuditHistory)
	}
}
