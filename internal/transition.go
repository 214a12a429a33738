package internal

import "github.com/google/uuid"

// Transition is an async-tolerant multi-step update: writes made while one
// is active stay pending on their Signal instead of committing at the next
// flush, so readers keep seeing the pre-transition value until either
// Commit or Abort is called. Commit and Abort finalize any owner zombified
// for this transition (owner.go's zombifyChildren/finalizeZombies), but
// nothing in the package calls zombifyChildren: an owner disposed while a
// transition is open is disposed immediately.
type Transition struct {
	ID uuid.UUID

	rt *Runtime

	pendingSignals []*Signal
	lane           *Lane

	done bool
}

func (r *Runtime) newTransition() *Transition {
	return &Transition{ID: uuid.New(), rt: r, lane: newLane()}
}

func (t *Transition) track(s *Signal) {
	t.pendingSignals = append(t.pendingSignals, s)
}

// Lane exposes this transition's optimistic lane so a StartTransition
// action can tag writes it wants to be independently revertible.
func (t *Transition) Lane() *Lane { return t.lane }

// Run executes action with t installed as the runtime's active transition,
// so every write action performs is captured as pending rather than
// committed immediately.
func (t *Transition) Run(action func()) {
	r := t.rt
	r.lock()
	defer r.unlock()

	prev := r.activeTransition
	r.activeTransition = t
	defer func() { r.activeTransition = prev }()
	action()
}

// Commit applies every write captured during the transition and runs a
// fresh flush to propagate them, then finalizes any owner zombified while
// the transition was open.
func (t *Transition) Commit() {
	r := t.rt
	r.lock()
	defer r.unlock()

	if t.done {
		return
	}
	t.done = true

	for _, s := range t.pendingSignals {
		if s.transition == t {
			markSubs(s)
			r.heap.insertAll(s.subs())
			r.pendingSignals = append(r.pendingSignals, s)
		}
	}
	t.lane.commit()
	t.pendingSignals = nil

	r.schedule()
	r.flush()

	if root := r.rootOwner; root != nil {
		root.finalizeZombies(t)
	}
}

// Abort discards every write captured during the transition without ever
// committing it, and reverts the transition's optimistic lane.
func (t *Transition) Abort() {
	r := t.rt
	r.lock()
	defer r.unlock()

	if t.done {
		return
	}
	t.done = true

	for _, s := range t.pendingSignals {
		if s.transition == t {
			s.revert()
		}
	}
	t.lane.revert()
	t.pendingSignals = nil

	if root := r.rootOwner; root != nil {
		root.finalizeZombies(t)
	}
}

func (t *Transition) IsPending(s *Signal) bool {
	r := t.rt
	r.lock()
	defer r.unlock()
	return s.transition == t || find(s.lane) == find(t.lane)
}
