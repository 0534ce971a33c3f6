package users

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusTransportFailure is reported when the upstream call failed without an HTTP status.
const StatusTransportFailure = http.StatusInternalServerError

// FetchError reports a failed upstream fetch.
type FetchError struct {
	// StatusCode is the upstream HTTP status, or StatusTransportFailure.
	StatusCode int
	// URL is the endpoint that was called.
	URL string
	// Err is the underlying cause, if any.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode returns the status code carried by err. Errors that are not a
// *FetchError map to StatusTransportFailure; a nil error maps to 200.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return StatusTransportFailure
}

// IsFetchError reports whether err wraps a *FetchError.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
