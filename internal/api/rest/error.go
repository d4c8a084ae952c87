package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/persona-indexer/internal/api/shared/errors"
	"github.com/feral-file/persona-indexer/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code apierrors.ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: apierrors.APIError{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.ErrCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 response and logs the error.
// Executor errors keep their own code.
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)

	code := apierrors.ErrCodeInternalError
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Code
	}
	respondWithError(c, http.StatusInternalServerError, code, message)
}
