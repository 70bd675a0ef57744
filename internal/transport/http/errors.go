package http

import (
	"errors"
	"net/http"

	"github.com/Seirafashion/sui-backend/internal/dto"
	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps service errors to HTTP status codes and the dto error envelope.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn("request rejected", zap.String("path", c.FullPath()), zap.String("reason", verr.Message))
		c.JSON(http.StatusBadRequest, dto.NewValidationError(verr.Message))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("Product not found"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("Order not found"))
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
