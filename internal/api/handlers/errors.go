package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-dashboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError translates the service-layer error taxonomy to the standard
// envelope. Internal detail stays out of authentication and authorization
// responses.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "message": err.Error()})
	case errors.Is(err, apperrors.ErrOrganizationRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": "organization required"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	case errors.Is(err, apperrors.ErrAuthServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication service unavailable"})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, apperrors.ErrOrganizationMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrParameterMissing), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
