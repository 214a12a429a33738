package reactant

import "github.com/antlr-labs/reactant/internal"

// NewBatch runs fn with flushing suppressed: every signal write inside fn is
// captured, and the scheduler flushes once on the way out of the outermost
// NewBatch call instead of after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Untrack runs fn without tracking any reactive dependency it reads.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().UntrackWith(func() { result = fn() })
	return result
}

// OnSettled registers fn to run once the current flush, and every effect it
// transitively queues, has fully drained.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

// OnRenderSettled registers fn to run once the render effect phase of the
// current flush iteration finishes, ahead of that iteration's user effects.
func OnRenderSettled(fn func()) {
	internal.GetRuntime().OnRenderSettled(fn)
}

// OnUserSettled registers fn to run once the user effect phase of the
// current flush iteration finishes, even if one of those effects queues a
// further iteration afterward.
func OnUserSettled(fn func()) {
	internal.GetRuntime().OnUserSettled(fn)
}
