package search

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLimit sets the per-list result cap. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}
