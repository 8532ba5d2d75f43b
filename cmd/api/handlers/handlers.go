package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/cmd/api/services"
	"portfolio-backend/cmd/api/trace"
	"portfolio-backend/internal/logger"
	"portfolio-backend/config"
)

// pageParams reads the limit/page query parameters. Range clamping happens
// in the services so every caller of the service layer gets it.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

// respondError maps a service error onto the documented status/body shapes.
// notFoundMsg is the entity-specific 404 message; message is the generic
// 500 fallback.
func respondError(c *gin.Context, err error, notFoundMsg, message string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  ve.Fields,
		})
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "Invalid ID format",
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Success: false,
			Message: notFoundMsg,
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Success: false,
			Message: "An account with that username or email already exists",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	default:
		logger.ErrorWithFields(message, logger.Fields{
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		resp := dto.ErrorResponse{Success: false, Message: message}
		if !config.IsProduction() {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// bindJSON decodes the body and answers 400 on malformed JSON.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return false
	}
	return true
}
