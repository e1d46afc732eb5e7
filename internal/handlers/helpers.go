package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"go.uber.org/zap"
)

// statusForCode maps an error code to its HTTP status.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeConflict:
		return http.StatusConflict
	case apperrors.CodeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes {"error", "code"}. Caller-facing codes
// carry their own message; upstream and internal failures are reported
// with fallback so transport details never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	code := apperrors.CodeOf(err)
	status := statusForCode(code)

	message := fallback
	var appErr *apperrors.Error
	if status < http.StatusInternalServerError && errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	log := logger.FromGin(c).With(zap.String("code", string(code)), zap.Error(err))
	if status >= http.StatusInternalServerError {
		log.Error(fallback)
	} else {
		log.Info(message)
	}

	c.JSON(status, gin.H{"error": message, "code": code})
}
