package errs

import "net/http"

const (
	CodeInvalidID       = "INVALID_ID"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidBody     = "INVALID_BODY"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message)
}

// NewBadRequestError builds a 400. An empty code defaults to BAD_REQUEST.
func NewBadRequestError(message, code string, errors []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	if code != "" {
		e.Code = code
	}
	e.Errors = errors
	return e
}

func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
}

// NewInternalServerError never carries the underlying cause.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func ValidationError(fields []FieldError) *HTTPError {
	return NewBadRequestError("Validation failed", CodeValidationError, fields)
}
