package model

import "time"

// Machine-readable error codes carried in error bodies
const (
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeUserAlreadyExists = "USER_ALREADY_EXISTS"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeDatabaseError     = "DATABASE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeConfigError       = "CONFIG_ERROR"
)

// DataResponse wraps every successful payload
type DataResponse struct {
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorDetail is the inner error object
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse wraps every failure as {error:{code,message,timestamp}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Timestamp formats t the way every envelope does
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NewDataResponse wraps data with the current time
func NewDataResponse(data any, now time.Time) DataResponse {
	return DataResponse{Data: data, Timestamp: Timestamp(now)}
}

// NewErrorResponse builds an error body
func NewErrorResponse(code, message string, now time.Time) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{
		Code:      code,
		Message:   message,
		Timestamp: Timestamp(now),
	}}
}
