package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondError writes the standard error envelope and logs the
// underlying cause when one is given.
func RespondError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		log.Printf("HTTP %d - %s: %v", status, message, err)
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}
