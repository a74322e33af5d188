package errutils

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError implements the error interface while providing HTTP-friendly details of the error.
type HTTPError struct {
	// Status is the HTTP status code of the error.
	Status int `json:"-"`
	// Code is a short, machine-readable identifier of the error.
	Code string `json:"code"`
	// Reason holds extra human-readable information about the error.
	Reason string `json:"reason,omitempty"`
}

func (h *HTTPError) Error() string {
	if h.Reason == "" {
		return h.Code
	}
	return fmt.Sprintf("%s: %s", h.Code, h.Reason)
}

// WithReasonStr returns a copy of the error with the given string as the reason.
func (h *HTTPError) WithReasonStr(reason string) *HTTPError {
	return &HTTPError{Status: h.Status, Code: h.Code, Reason: reason}
}

// WithReasonErr returns a copy of the error with the given error's message as the reason.
func (h *HTTPError) WithReasonErr(reason error) *HTTPError {
	return h.WithReasonStr(reason.Error())
}

// ToHTTPError converts any error value to the *HTTPError type.
// If the given error is not an *HTTPError, it is treated as an internal server error.
func ToHTTPError(err error) *HTTPError {
	httpError := &HTTPError{}
	if errors.As(err, &httpError) {
		return httpError
	}
	return InternalServerError().WithReasonErr(err)
}

// BadRequest is for requests with invalid inputs.
func BadRequest() *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: http.StatusText(http.StatusBadRequest)}
}

// Unauthorized is for requests with missing or invalid credentials.
func Unauthorized() *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Code: http.StatusText(http.StatusUnauthorized)}
}

// NotFound is for requests to unknown resources or routes.
func NotFound() *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Code: http.StatusText(http.StatusNotFound)}
}

// InternalServerError is for unexpected server-side failures.
func InternalServerError() *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Code: http.StatusText(http.StatusInternalServerError)}
}

// BadGateway is for failures of an upstream dependency.
func BadGateway() *HTTPError {
	return &HTTPError{Status: http.StatusBadGateway, Code: http.StatusText(http.StatusBadGateway)}
}
