package reactant

import "github.com/antlr-labs/reactant/internal"

// EffectOption configures an Effect at construction time.
type EffectOption func(*internal.EffectOptions)

// WithEffectName attaches a debug name to an Effect.
func WithEffectName(name string) EffectOption {
	return func(o *internal.EffectOptions) { o.Name = name }
}

// WithDeferredEffect skips the effect's first run at creation time; it runs
// for the first time on the next flush instead.
func WithDeferredEffect() EffectOption {
	return func(o *internal.EffectOptions) { o.Defer = true }
}

// WithEffectErrorHandler is invoked, instead of propagating the panic to
// the owner chain, when the effect function panics.
func WithEffectErrorHandler(fn func(any)) EffectOption {
	return func(o *internal.EffectOptions) { o.OnError = fn }
}

// NewEffect runs fn immediately and again every time a signal/computed it
// read last run changes, after every render effect in the same flush has
// run.
func NewEffect(fn func(), opts ...EffectOption) {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}
	internal.GetRuntime().NewEffect(internal.EffectTypeUser, func() func() { fn(); return nil }, o)
}

// NewRenderEffect is like NewEffect but runs before user effects within a
// flush, for side effects (DOM writes, layout) that user effects should be
// able to observe as already applied.
func NewRenderEffect(fn func(), opts ...EffectOption) {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}
	internal.GetRuntime().NewEffect(internal.EffectTypeRender, func() func() { fn(); return nil }, o)
}

// NewEffectWithCleanup is NewEffect for side effects that need to tear
// something down before the next run or on disposal.
func NewEffectWithCleanup(fn func() func(), opts ...EffectOption) {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}
	internal.GetRuntime().NewEffect(internal.EffectTypeUser, fn, o)
}
