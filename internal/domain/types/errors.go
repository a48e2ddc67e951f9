package types

import "errors"

// Sentinel error kinds shared by the service and its transports.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
