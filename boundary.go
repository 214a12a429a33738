package reactant

import "github.com/antlr-labs/reactant/internal"

// ErrorBoundary runs content and, if anything it reads raises a compute
// error, switches to fallback(err) instead. Recovers the same way an owner
// does, but scoped to a single derived value rather than propagating up.
func ErrorBoundary[T any](content func() T, fallback func(error) T, opts ...ComputedOption) *Computed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := internal.GetRuntime().NewBoundary(internal.BoundaryError,
		func() any { return content() },
		func(err error) any { return fallback(err) },
		o,
	)
	return &Computed[T]{b.Computed}
}

// Suspense runs content and, while any async computed it reads is still
// in flight, renders fallback instead.
func Suspense[T any](content func() T, fallback func() T, opts ...ComputedOption) *Computed[T] {
	var o internal.ComputedOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := internal.GetRuntime().NewBoundary(internal.BoundarySuspense,
		func() any { return content() },
		func(error) any { return fallback() },
		o,
	)
	return &Computed[T]{b.Computed}
}
