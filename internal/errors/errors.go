package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrServiceNotFound is returned when a catalog service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrQuoteNotFound is returned when a quote request is not found.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrMediaNotFound is returned when a project media record is not found.
	ErrMediaNotFound = errors.New("media not found")
	// ErrUnsupportedMediaType is returned when an uploaded file's mime type is not allowed.
	ErrUnsupportedMediaType = errors.New("file type is not allowed")
	// ErrFileTooLarge is returned when an uploaded file exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnreadableUpload is returned when an uploaded file's size cannot be measured.
	ErrUnreadableUpload = errors.New("could not determine file size")
	// ErrInvalidQuoteStatus is returned when a quote status transition targets an unknown state.
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrServiceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SERVICE_NOT_FOUND")
	case ErrQuoteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUOTE_NOT_FOUND")
	case ErrMediaNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEDIA_NOT_FOUND")
	case ErrUnsupportedMediaType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_MEDIA_TYPE")
	case ErrFileTooLarge:
		return NewHTTPError(http.StatusRequestEntityTooLarge, err.Error(), "FILE_TOO_LARGE")
	case ErrUnreadableUpload:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNREADABLE_UPLOAD")
	case ErrInvalidQuoteStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUOTE_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
