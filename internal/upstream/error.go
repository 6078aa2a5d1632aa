package upstream

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from a remote API.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Op, e.Status, e.Body)
}

// IsStatus reports whether err wraps a StatusError with the given code.
func IsStatus(err error, status int) bool {
	var se StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == status
}
