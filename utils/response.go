package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error envelope every handler uses:
// {"error": {"code": ..., "message": ...}}.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
