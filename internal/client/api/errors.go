package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// StatusError reports a non-2xx HTTP response. Match with errors.As or the
// IsStatus helper.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
