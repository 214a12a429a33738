package reactant

import "github.com/antlr-labs/reactant/internal"

// Owner is the ownership-tree node every signal, computed and effect is
// created under. Disposing an owner recursively disposes its children
// (most-recently-created first) then runs its own cleanups.
type Owner struct {
	inner *internal.Owner
}

// NewOwner creates a new owner, nested under the current owner if one is
// active.
func NewOwner() *Owner {
	return &Owner{internal.GetRuntime().NewOwner()}
}

// Run executes fn with this owner active: every signal/computed/effect fn
// creates becomes this owner's child, and a panic fn raises is caught by
// this owner's registered error handlers (if any) instead of propagating.
func (o *Owner) Run(fn func() error) error { return o.inner.Run(fn) }

// Dispose this owner and every descendant, then run its own cleanups.
func (o *Owner) Dispose() { o.inner.Dispose() }

// OnCleanup registers fn to run once, when this owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.inner.OnCleanup(fn) }

// OnDispose is an alias for OnCleanup: Dispose only ever runs once per
// owner, so there is no distinction between "on cleanup" and "on dispose"
// here.
func (o *Owner) OnDispose(fn func()) { o.inner.OnCleanup(fn) }

// OnError registers fn to catch panics raised by code run under this
// owner (via Run or by a nested Computed/Effect recompute).
func (o *Owner) OnError(fn func(any)) { o.inner.OnError(fn) }

// OnCleanup registers fn on the current owner. A no-op if none is active.
func OnCleanup(fn func()) { internal.GetRuntime().OnCleanup(fn) }

// OnError registers fn on the current owner. A no-op if none is active.
func OnError(fn func(any)) { internal.GetRuntime().OnError(fn) }
