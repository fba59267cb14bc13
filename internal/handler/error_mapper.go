package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/users/api/internal/model"
)

// APIError is the HTTP form of a service error
type APIError struct {
	Status  int
	Code    string
	Message string
}

// MapError converts a service error to its HTTP status, code and message.
// This is the only place error kinds meet status codes. Storage, internal
// and configuration details are replaced with fixed messages.
func MapError(err error) APIError {
	var e *model.Error
	if !errors.As(err, &e) {
		return APIError{http.StatusInternalServerError, model.CodeInternalError, "Internal server error occurred"}
	}

	switch e.Kind {
	case model.KindNotFound:
		return APIError{http.StatusNotFound, model.CodeUserNotFound, e.Error()}
	case model.KindAlreadyExists:
		return APIError{http.StatusConflict, model.CodeUserAlreadyExists, e.Error()}
	case model.KindInvalidInput:
		return APIError{http.StatusBadRequest, model.CodeInvalidInput, e.Error()}
	case model.KindDatabase:
		return APIError{http.StatusInternalServerError, model.CodeDatabaseError, "Database operation failed"}
	case model.KindConfig:
		return APIError{http.StatusInternalServerError, model.CodeConfigError, "Configuration error"}
	default:
		return APIError{http.StatusInternalServerError, model.CodeInternalError, "Internal server error occurred"}
	}
}
