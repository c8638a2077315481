package response

import (
	"log"
	"net/http"
	"strconv"

	"anoa.com/noorautomobiles/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uint, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 64)
	if err != nil {
		return 0, apperror.ErrUnauthorized
	}

	return uint(userID), nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors, keep the response body generic
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
