package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONSuccess sends the uniform success envelope: {"success": true} merged
// with the payload fields.
func JSONSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// JSONFailure sends the uniform failure envelope. Business failures use
// http.StatusOK: they are normal outcomes signaled in-band, not transport
// errors.
func JSONFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
