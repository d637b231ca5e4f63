package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound is returned when no article matches the lookup.
	// On delete it also covers "exists but not owned by the caller", on
	// purpose, so non-owners cannot probe for existence.
	ErrArticleNotFound = errors.New("article not found")
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password share this error so responses do not leak which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a protected route cannot resolve
	// a valid identity from the request.
	ErrUnauthenticated = errors.New("could not validate credentials")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate email maps to
// 406, matching the original API rather than the conventional 409.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrArticleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ARTICLE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusNotAcceptable, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
