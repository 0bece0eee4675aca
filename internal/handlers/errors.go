package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// respondError maps err to its AppError and writes it. Server side failures
// are logged with msg; client errors are not.
func respondError(c *gin.Context, msg string, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Code >= http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
	}
	c.JSON(appErr.Code, appErr)
}

// respondBindError answers 400 for a body or query that failed binding.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Request binding failed", slog.String("error", err.Error()))
	appErr := apperrors.NewBadRequestError("Invalid request: " + err.Error())
	c.JSON(appErr.Code, appErr)
}
