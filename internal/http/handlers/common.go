package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/domain"
)

// getAuthenticatedUID extracts the authenticated uid set by the JWT
// middleware
func getAuthenticatedUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(domain.NewUnauthorizedError("User not authenticated")))
		return "", false
	}
	return uid.(string), true
}

// respondError maps a use case error onto its HTTP status. AppErrors carry
// their own status; anything else is an internal error.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		if requestID, exists := c.Get("request_id"); exists {
			appErr.RequestID = requestID.(string)
		}
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(domain.NewInternalError("", err)))
}
