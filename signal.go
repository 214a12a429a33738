package reactant

import "github.com/antlr-labs/reactant/internal"

// SignalOption configures a Signal at construction time.
type SignalOption func(*internal.SignalOptions)

// WithName attaches a debug name, surfaced in logs/metrics when enabled.
func WithName(name string) SignalOption {
	return func(o *internal.SignalOptions) { o.Name = name }
}

// WithEquals overrides the default == comparison used to decide whether a
// write actually changes the signal's value.
func WithEquals[T any](equals func(a, b T) bool) SignalOption {
	return func(o *internal.SignalOptions) {
		o.Equals = func(a, b any) bool { return equals(as[T](a), as[T](b)) }
	}
}

// WithPureWrite makes every Write schedule subscribers unconditionally,
// bypassing the equality check entirely.
func WithPureWrite() SignalOption {
	return func(o *internal.SignalOptions) { o.PureWrite = true }
}

// WithUnobserved registers a callback invoked once the signal's subscriber
// list goes from non-empty back to empty.
func WithUnobserved(fn func()) SignalOption {
	return func(o *internal.SignalOptions) { o.Unobserved = fn }
}

// Signal is a leaf reactive value.
type Signal[T any] struct {
	inner *internal.Signal
}

// NewSignal creates a read/write signal holding initial.
func NewSignal[T any](initial T, opts ...SignalOption) *Signal[T] {
	var o internal.SignalOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[T]{internal.GetRuntime().NewSignal(initial, o)}
}

// Read the current value, tracking the dependency if called while a
// Computed or Effect is running.
func (s *Signal[T]) Read() T { return as[T](s.inner.Read()) }

// Write a new value, scheduling every subscriber for recomputation if it
// differs from the current one.
func (s *Signal[T]) Write(v T) { s.inner.Write(v) }

// Update reads the current value without tracking a dependency and writes
// back fn's result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.inner.Update(func(v any) any { return fn(as[T](v)) })
}

// WriteOptimistic stages v tagged with lane (typically a transition's own,
// via Transition.Lane) and makes it visible immediately, unlike a plain
// Write made inside a transition's Action, which stays hidden until Commit.
// It reverts to the prior value if the lane's owning transition is aborted.
func (s *Signal[T]) WriteOptimistic(v T, lane *Lane) {
	s.inner.WriteOptimistic(v, lane)
}

// Name returns the signal's debug name, if any.
func (s *Signal[T]) Name() string { return s.inner.Name() }
