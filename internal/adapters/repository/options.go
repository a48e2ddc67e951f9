package repository

import "github.com/okian/scouthub/pkg/logger"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger used for load failures and early reads.
func WithLogger(l logger.Logger) Option {
	return func(s *MemoryStore) {
		if l != nil {
			s.logger = l
		}
	}
}
