package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no data source is configured.
var ErrProviderUnavailable = errors.New("data source unavailable")

// StatusError captures non-2xx responses from the data source.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NotFound reports whether the data source answered 404.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == 404
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
