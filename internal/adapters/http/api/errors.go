package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// badRequest wraps ErrBadRequest with the operation and a reason.
func badRequest(op, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, ErrBadRequest)
}
