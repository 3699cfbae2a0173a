package handlers

import (
	"errors"
	"net/http"

	"sparkle/services/booking"
	"sparkle/services/pricing"
	"sparkle/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case pricing.IsValidation(err), errors.Is(err, booking.ErrDraftIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, pricing.ErrNotFound),
		errors.Is(err, booking.ErrDraftNotFound),
		errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal details are only
// exposed for client errors.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		c.JSON(status, utils.ErrorResponse{Error: msg, Message: "An unexpected error occurred. Please try again later."})
		return
	}
	logger.Warn(msg, zap.Int("status", status), zap.Error(err))
	c.JSON(status, utils.ErrorResponse{Error: msg, Message: err.Error()})
}

func badRequest(c *gin.Context, logger *zap.Logger, msg string, err error) {
	logger.Warn(msg, zap.Error(err))
	c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: msg, Message: err.Error()})
}
