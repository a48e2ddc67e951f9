// Package debounce coalesces bursts of calls into a single trailing invocation.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. It exists so tests can control time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Debouncer calls fn with the latest argument once no Call has arrived for the
// window. At most one invocation is pending at any time.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)
	clock  Clock

	mu         sync.Mutex
	timer      Timer
	generation uint64
	pending    bool
	arg        T
}

// Option configures a Debouncer.
type Option func(*settings)

type settings struct {
	clock Clock
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// New returns a debouncer that invokes fn after window of quiet.
// A non-positive window falls back to DefaultWindow.
func New[T any](window time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	s := settings{clock: realClock{}}
	for _, opt := range opts {
		opt(&s)
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, fn: fn, clock: s.clock}
}

// Window returns the quiet period.
func (d *Debouncer[T]) Window() time.Duration { return d.window }

// Call records arg as the latest argument and restarts the quiet period.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.arg = arg
	d.pending = true
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire runs fn if no newer Call, Flush or Stop has happened since gen was scheduled.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.fn(arg)
}

// take clears the pending state and returns the argument. Callers hold mu.
func (d *Debouncer[T]) take() T {
	arg := d.arg
	var zero T
	d.arg = zero
	d.pending = false
	d.timer = nil
	d.generation++
	return arg
}

// Flush runs the pending invocation immediately. It reports whether one ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	arg := d.take()
	d.mu.Unlock()

	d.fn(arg)
	return true
}

// Stop cancels the pending invocation. It reports whether one was cancelled.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.take()
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
