// Package apperror defines the error taxonomy shared by every HTTP-facing component.
// Each error carries the HTTP status it maps to and a stable error_code that clients branch on.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes exposed in the error_code field of error responses.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeMissingFields       = "MISSING_REQUIRED_FIELDS"
	CodeUserExists          = "USER_ALREADY_EXISTS"
	CodeSlugExists          = "SLUG_ALREADY_EXISTS"
	CodeNoUpdateFields      = "NO_UPDATE_FIELDS"
	CodeTokenMissing        = "AUTH_TOKEN_MISSING"
	CodeTokenInvalid        = "AUTH_TOKEN_INVALID"
	CodeAuthUserNotFound    = "AUTH_USER_NOT_FOUND"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeRouteNotFound       = "ROUTE_NOT_FOUND"
	CodePayloadTooLarge     = "PAYLOAD_TOO_LARGE"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeProjectNotFound     = "PROJECT_NOT_FOUND"
	CodeTestimonialNotFound = "TESTIMONIAL_NOT_FOUND"
	CodeServiceNotFound     = "SERVICE_NOT_FOUND"
	CodeBlogPostNotFound    = "BLOG_POST_NOT_FOUND"
)

// Error is an error that knows how it is presented over HTTP.
type Error struct {
	Status  int
	Code    string
	Message string
	// Details is rendered verbatim into the response body when set.
	Details any

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same code,
// so sentinel values can be compared with errors.Is after being wrapped or detailed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of e that wraps cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// New creates an Error.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// NotFound creates a 404 error for a resource-specific code.
func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

// Duplicate creates the 400 error returned for uniqueness collisions.
func Duplicate(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

var (
	ErrNoUpdateFields     = New(http.StatusBadRequest, CodeNoUpdateFields, "No fields to update")
	ErrTokenMissing       = New(http.StatusUnauthorized, CodeTokenMissing, "Access token required")
	ErrTokenInvalid       = New(http.StatusForbidden, CodeTokenInvalid, "Invalid or expired token")
	ErrAuthUserNotFound   = New(http.StatusUnauthorized, CodeAuthUserNotFound, "User not found")
	ErrInvalidCredentials = New(http.StatusBadRequest, CodeInvalidCredentials, "Invalid email or password")
	ErrRouteNotFound      = New(http.StatusNotFound, CodeRouteNotFound, "Route not found")
	ErrPayloadTooLarge    = New(http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "Request body too large")
)

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, "Internal server error").WithCause(cause)
}

// From returns the *Error in err's chain, or an InternalError wrapping err.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
