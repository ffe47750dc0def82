package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GenericFailureMessage is the message of every unclassified ResponseError.
const GenericFailureMessage = "Something went wrong during fetching!"

// ResponseError is the only error type returned by Execute.
//
// A non-zero Status means the server answered with a non-success status
// (a classified failure). A zero Status means the call could not be completed
// or its result could not be interpreted (an unclassified failure): network
// errors, malformed JSON and shape validation failures all land here.
type ResponseError struct {
	// Message is the server status text, or GenericFailureMessage.
	Message string

	// Status is the HTTP status code, or zero when unknown.
	Status int

	cause error
}

// Error implements error.
func (e *ResponseError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetcher: %d %s", e.Status, e.Message)
	}
	return "fetcher: " + e.Message
}

// Unwrap exposes the underlying cause of an unclassified failure.
func (e *ResponseError) Unwrap() error { return e.cause }

// HasStatus reports whether the server responded with a status code.
func (e *ResponseError) HasStatus() bool { return e.Status != 0 }

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var rerr *ResponseError
	if errors.As(err, &rerr) && rerr.HasStatus() {
		return rerr.Status, true
	}
	return 0, false
}

// IsNotFound reports whether err is a classified 404.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// classify normalizes err into a *ResponseError. Errors that already are (or
// wrap) a *ResponseError are returned as that error, unchanged.
func classify(err error) *ResponseError {
	if err == nil {
		return nil
	}
	var rerr *ResponseError
	if errors.As(err, &rerr) {
		return rerr
	}
	return &ResponseError{Message: GenericFailureMessage, cause: err}
}

// statusError builds a classified failure from a status code and status line.
func statusError(code int, statusLine string) *ResponseError {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(statusLine), strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return &ResponseError{Message: text, Status: code}
}
