package probe

import "errors"

var (
	// ErrUnhealthy is returned when /healthz does not answer 200.
	ErrUnhealthy = errors.New("service unhealthy")
	// ErrUnexpectedStatus is returned for any other non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMismatch is returned when a response disagrees with the reference dataset.
	ErrMismatch = errors.New("reference mismatch")
)
