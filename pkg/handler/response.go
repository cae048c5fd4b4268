package handler

import (
	"net/http"

	"wallet_api_back/pkg/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	invalidBodyMessage   = "Invalid request body"
	internalErrorMessage = "Internal server error"
)

// Error keeps the {"detail": ...} shape the web front end already parses.
type Error struct {
	Detail string `json:"detail"`
}

// newErrorResponse logs once and aborts with {"detail": message}. Client errors
// are logged at Warn, server errors at Error; cause is logged but never sent.
func newErrorResponse(c *gin.Context, statusCode int, message string, cause error) {
	entry := logrus.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"status": statusCode,
	})
	if cause != nil {
		entry = entry.WithError(cause)
	}
	if statusCode >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}
	c.AbortWithStatusJSON(statusCode, Error{Detail: message})
}

// newServiceErrorResponse maps service errors to HTTP statuses. Unknown errors
// come from the database and are reported as 500 without leaking the cause.
func newServiceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrDepositAddressNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidDateFormat):
		newErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	default:
		newErrorResponse(c, http.StatusInternalServerError, internalErrorMessage, err)
	}
}

func newBindErrorResponse(c *gin.Context, err error) {
	newErrorResponse(c, http.StatusUnprocessableEntity, invalidBodyMessage, err)
}
