package reactant

import "github.com/antlr-labs/reactant/internal"

// Transition is an async-tolerant multi-step update: writes made inside its
// Action stay pending on their signal until Commit or Abort is called,
// instead of committing at the next flush the way an ordinary write would.
type Transition struct {
	inner *internal.Transition
}

// StartTransition opens a transition and runs action inside it; every write
// action performs is captured as pending. The returned Transition must be
// committed or aborted to resolve those writes one way or the other.
func StartTransition(action func()) *Transition {
	return &Transition{internal.GetRuntime().StartTransition(action)}
}

// Commit applies every write captured during the transition and flushes to
// propagate them.
func (t *Transition) Commit() { t.inner.Commit() }

// Abort discards every write captured during the transition, including
// reverting any optimistic lane it tagged.
func (t *Transition) Abort() { t.inner.Abort() }

// Lane exposes t's optimistic lane, so a caller can tag writes made outside
// t's own Action (e.g. from an async callback it kicked off) with
// WriteOptimistic, reverted together with everything else if t is aborted.
func (t *Transition) Lane() *Lane { return t.inner.Lane() }

// IsPending reports whether s has a write staged under t (or under a lane
// that has since merged into it) that has not yet committed. A free
// function, not a method, since Go methods cannot carry their own type
// parameters.
func IsPending[T any](t *Transition, s *Signal[T]) bool {
	return t.inner.IsPending(s.inner)
}
