package reactant

import "github.com/antlr-labs/reactant/internal"

// Context is a typed value inherited down the ownership tree: Set stores a
// value on the current owner, visible to it and every owner created under
// it afterward; Value reads it back, falling back to the context's initial
// value wherever no owner ever called Set, including outside any owner.
type Context[T any] struct {
	key     *internal.ContextKey
	initial T
}

// NewContext declares a context whose Value falls back to initial wherever
// no owner has called Set.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{key: internal.NewContextKey(initial, true), initial: initial}
}

// Set stores value on the current owner and every owner created under it
// from this point on. A no-op outside of any owner.
func (c *Context[T]) Set(value T) {
	owner := internal.GetRuntime().CurrentOwner()
	if owner == nil {
		return
	}
	owner.Provide(c.key, value)
}

// Value resolves the context from the current owner, or returns the
// context's initial value if no owner is active or none ever called Set.
func (c *Context[T]) Value() T {
	owner := internal.GetRuntime().CurrentOwner()
	if owner == nil {
		return c.initial
	}
	v, ok := owner.Value(c.key)
	if !ok {
		return c.initial
	}
	return as[T](v)
}
