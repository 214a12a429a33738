package reactant

import "github.com/antlr-labs/reactant/internal"

// ComputedOption configures a Computed at construction time.
type ComputedOption func(*internal.ComputedOptions)

// WithComputedName attaches a debug name to a Computed.
func WithComputedName(name string) ComputedOption {
	return func(o *internal.ComputedOptions) { o.Name = name }
}

// WithComputedEquals overrides the default == comparison a Computed uses to
// decide whether its recomputed value actually changed.
func WithComputedEquals[T any](equals func(a, b T) bool) ComputedOption {
	return func(o *internal.ComputedOptions) {
		o.Equals = func(a, b any) bool { return equals(as[T](a), as[T](b)) }
	}
}

// Computed is a derived, memoized reactive value.
type Computed[T any] struct {
	inner *internal.Computed
}

// NewComputed derives a memoized value from other signals/computeds.
func NewComputed[T any](compute func() T, opts ...ComputedOption) *Computed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	c := internal.GetRuntime().NewComputed(func(prev any) any {
		return compute()
	}, o)
	return &Computed[T]{c}
}

// NewAccumulator is NewComputed for derivations that want to see their own
// previous value (the zero value on the first run) alongside whatever
// signals they read — a running total, a history buffer, and so on.
func NewAccumulator[T any](compute func(prev T) T, opts ...ComputedOption) *Computed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	c := internal.GetRuntime().NewComputed(func(prev any) any {
		return compute(as[T](prev))
	}, o)
	return &Computed[T]{c}
}

// Read the current value, pulling a fresh recompute first if stale.
func (c *Computed[T]) Read() T { return as[T](c.inner.Read()) }

// AsyncComputed is a Computed whose compute function resolves on a
// goroutine instead of returning synchronously. Read does not block while
// the goroutine is in flight; it panics with a not-ready error instead.
type AsyncComputed[T any] struct {
	inner *internal.AsyncComputed
}

// NewAsyncComputed derives a value from an async fetch function. Each
// recompute spawns fetch on its own goroutine; a later recompute started
// before an earlier one resolves discards the earlier goroutine's result
// when it eventually arrives.
func NewAsyncComputed[T any](fetch func() (T, error), opts ...ComputedOption) *AsyncComputed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	ac := internal.GetRuntime().NewAsyncComputed(func(prev any) (any, error) {
		return fetch()
	}, o)
	return &AsyncComputed[T]{ac}
}

// Read returns the last resolved value. While a fetch is in flight it
// panics with a not-ready error the same way any other Read does when its
// dependency is pending — callers inside a Suspense boundary never observe
// this panic directly.
func (c *AsyncComputed[T]) Read() T { return as[T](c.inner.Read()) }
