package solver

import (
	"fmt"
	"route-form-service/internal/ports"
)

// ErrRequestFailed is ports.ErrRequestFailed, re-exported for adapter callers.
var ErrRequestFailed = ports.ErrRequestFailed

// RequestFailedError carries the upstream status (0 when no response arrived).
// Body is kept for logs only; callers must not show it to users.
type RequestFailedError struct {
	Status int
	Body   string
	Err    error
}

func (e *RequestFailedError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%v: %v", ErrRequestFailed, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%v: status %d", ErrRequestFailed, e.Status)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrRequestFailed, e.Status, e.Body)
}

func (e *RequestFailedError) Is(target error) bool { return target == ErrRequestFailed }

func (e *RequestFailedError) Unwrap() error { return e.Err }
