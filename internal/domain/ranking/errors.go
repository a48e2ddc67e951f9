package ranking

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidDirection = errors.New("invalid sort direction")
)
