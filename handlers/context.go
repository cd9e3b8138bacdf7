package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextUserID pulls the authenticated user ID set by the auth middleware.
// It writes the error response itself when the ID is missing.
func contextUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return idStr, true
}
