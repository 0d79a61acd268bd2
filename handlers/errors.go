package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ClinicDesk/apperrors"
)

// respondError maps the typed error taxonomy to HTTP responses. Validation
// and transition failures are client errors with the message passed
// through; network failures surface as retryable so the desk can offer a
// retry without duplicating the action.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNetwork(err):
		log.Printf("Upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "action failed", "retryable": true})
	default:
		log.Printf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
