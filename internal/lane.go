package internal

import "github.com/google/uuid"

// StoreRevertHook lets an external store (anything keeping state outside a
// plain Signal) participate in optimistic rollback: when a lane is
// abandoned instead of committed, every hook registered against it is asked
// to revert whatever it staged under that lane.
type StoreRevertHook interface {
	Revert(lane *Lane)
}

// Lane tags one optimistic write so it can be reverted independently of
// whatever else is in flight. Lanes merge via union-find when a recomputed
// Computed depends on one lane while already carrying another
// (Runtime.propagateLane); a transition's Commit or Abort resolves its lane
// by committing or reverting every signal tagged with it, without merging
// it anywhere. done implements the union-find "pointer chain" — find()
// walks it with path compression.
type Lane struct {
	ID uuid.UUID

	done   *Lane // nil until merged into another lane
	hooks  []StoreRevertHook
	signals []*Signal
}

func newLane() *Lane {
	return &Lane{ID: uuid.New()}
}

// find resolves l to its ultimate representative, compressing the path so
// repeated lookups after a deep merge chain stay O(1) amortized.
func find(l *Lane) *Lane {
	if l == nil {
		return nil
	}
	root := l
	for root.done != nil {
		root = root.done
	}
	for l.done != nil && l.done != root {
		next := l.done
		l.done = root
		l = next
	}
	return root
}

// union merges child into parent's lane group; used by propagateLane when a
// Computed's existing lane meets a different lane on one of its deps.
func union(parent, child *Lane) {
	childRoot := find(child)
	parentRoot := find(parent)
	if childRoot == parentRoot {
		return
	}
	childRoot.done = parentRoot
	parentRoot.hooks = append(parentRoot.hooks, childRoot.hooks...)
	parentRoot.signals = append(parentRoot.signals, childRoot.signals...)
	childRoot.hooks = nil
	childRoot.signals = nil
}

func (l *Lane) registerHook(h StoreRevertHook) {
	l.hooks = append(l.hooks, h)
}

// RegisterHook is the exported entry point the public package uses to tie a
// store revert hook to a transition's lane.
func (l *Lane) RegisterHook(h StoreRevertHook) {
	l.registerHook(h)
}

func (l *Lane) track(s *Signal) {
	l.signals = append(l.signals, s)
}

// commit finalizes every signal tagged with this lane, applying its pending
// optimistic value as the real value.
func (l *Lane) commit() {
	root := find(l)
	for _, s := range root.signals {
		if s.lane == root || find(s.lane) == root {
			s.commit()
		}
	}
	root.signals = nil
}

// revert discards this lane's staged writes and asks every registered store
// hook to roll back whatever it staged under it.
func (l *Lane) revert() {
	root := find(l)
	for _, s := range root.signals {
		if s.lane == root || find(s.lane) == root {
			s.revert()
		}
	}
	root.signals = nil
	for _, h := range root.hooks {
		h.Revert(root)
	}
}
