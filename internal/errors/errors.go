package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFetch      ErrorType = "fetch"
	ErrorTypeAnalysis   ErrorType = "analysis"
	ErrorTypeConfig     ErrorType = "config"
)

// Client-visible messages. They never carry the underlying cause.
const (
	MessageImageURLNotProvided = "imageUrl not provided"
	MessageAnalysisFailed      = "An internal server error occurred during analysis."
	messageFetchFailedFormat   = "Failed to download image from URL: %s"
)

// AppError represents a structured application error.
// Message is safe to return to callers; Cause stays server-side.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports a missing or malformed imageUrl
func NewValidationError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    MessageImageURLNotProvided,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPayloadTooLargeError rejects a request body above limit bytes
func NewPayloadTooLargeError(limit int64) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    fmt.Sprintf("request body exceeds %d bytes", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// NewFetchError reports that the image at imageURL could not be downloaded.
// The URL is echoed back to the caller.
func NewFetchError(imageURL string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeFetch,
		Message:    fmt.Sprintf(messageFetchFailedFormat, imageURL),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewAnalysisError covers provider failures and unparseable provider output
func NewAnalysisError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeAnalysis,
		Message:    MessageAnalysisFailed,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewConfigError is a startup failure; the process must not serve traffic
func NewConfigError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConfig,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode extracts the HTTP status code from an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text a caller may see for err
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return MessageAnalysisFailed
}
