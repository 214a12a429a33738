// Package reactant is a fine-grained reactive graph engine: signals hold
// leaf state, computeds derive memoized values from other signals and
// computeds, and effects run side effects whenever what they read changes.
// Propagation is height-ordered so a glitch (a dependent observing a
// half-updated dependency chain) cannot happen, and the scheduler is a
// push/pull hybrid: a write marks its dependents and, outside a batch,
// flushes right away, recomputing them in height order; a read of a stale
// computed pulls it fresh first.
package reactant

import "github.com/antlr-labs/reactant/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
