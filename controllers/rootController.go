package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler answers health probes on the root path.
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRootRoute sets up the health route for the application.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
