package handlers

import (
	"net/http"
	"strconv"

	"taxpro-backend/internal/auth"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// respondError maps service errors onto HTTP status codes. Anything unclassified is a 500
// carrying action as the message and the underlying error as details.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": err.Error()})
	}
}

func badRequestBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// parseIDParam parses the :id path parameter, answering 400 when it is not a UUID
func parseIDParam(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and page_size; the service clamps them
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// identity returns the authenticated caller or answers 401
func identity(c *gin.Context) (auth.Identity, bool) {
	who, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return auth.Identity{}, false
	}
	return who, true
}
