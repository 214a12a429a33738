package internal

// DependencyLink is the only object that records a subscription: it is
// threaded into both its dependency's subscriber list and its subscriber's
// dependency list. Signals and Computeds never hold ad-hoc subscriber
// slices of their own.
type DependencyLink struct {
	dep *Signal
	sub *Computed

	prevDep *DependencyLink
	nextDep *DependencyLink

	prevSub *DependencyLink
	nextSub *DependencyLink
}

// link creates (or reuses) a dependency edge between dep and sub. While sub
// is recomputing, its existing dep list is walked in order and matched
// positionally, so a steady-state dependency set costs zero allocations.
func link(dep *Signal, sub *Computed) {
	prevDep := sub.depsTail

	// Already linked as the most recently read dependency this pass.
	if prevDep != nil && prevDep.dep == dep {
		return
	}

	var nextDep *DependencyLink
	recomputing := sub.flags.has(FlagRecomputingDeps)

	if recomputing {
		if prevDep != nil {
			nextDep = prevDep.nextDep
		} else {
			nextDep = sub.depsHead
		}

		// The next edge in the old list already points at dep: it
		// survives this recompute unchanged, just advance the tail.
		if nextDep != nil && nextDep.dep == dep {
			sub.depsTail = nextDep
			return
		}
	}

	prevSub := dep.subsTail
	if prevSub != nil && prevSub.sub == sub && !recomputing {
		return
	}

	l := &DependencyLink{dep: dep, sub: sub, nextDep: nextDep, prevSub: prevSub}

	if prevDep != nil {
		prevDep.nextDep = l
	} else {
		sub.depsHead = l
	}
	sub.depsTail = l

	if prevSub != nil {
		prevSub.nextSub = l
	} else {
		dep.subsHead = l
	}
	dep.subsTail = l

	if dep.height >= sub.height {
		sub.height = dep.height + 1
	}
}

// unlink removes l from its dependency's subscriber list and returns the
// dependency edge that followed it in the subscriber's own list (used
// while trimming stale deps after a recompute).
func unlink(l *DependencyLink) *DependencyLink {
	dep := l.dep
	nextDep := l.nextDep

	if l.nextSub != nil {
		l.nextSub.prevSub = l.prevSub
	} else {
		dep.subsTail = l.prevSub
	}
	if l.prevSub != nil {
		l.prevSub.nextSub = l.nextSub
	} else {
		dep.subsHead = l.nextSub
	}

	l.prevSub, l.nextSub, l.nextDep = nil, nil, nil
	return nextDep
}

// trimDeps drops every dependency edge of sub that was not re-established
// during the recompute that just finished (i.e. everything after
// sub.depsTail in the old list).
func trimDeps(sub *Computed) {
	var toRemove *DependencyLink
	if sub.depsTail != nil {
		toRemove = sub.depsTail.nextDep
	} else {
		toRemove = sub.depsHead
	}

	for toRemove != nil {
		toRemove = unlink(toRemove)
	}

	if sub.depsTail != nil {
		sub.depsTail.nextDep = nil
	} else {
		sub.depsHead = nil
	}
}

// clearDeps unconditionally removes every dependency edge of sub (used on
// disposal).
func clearDeps(sub *Computed) {
	for l := sub.depsHead; l != nil; {
		next := l.nextDep
		unlink(l)
		l = next
	}
	sub.depsHead = nil
	sub.depsTail = nil
}

// forEachSub walks dep's subscriber list in order. fn may not mutate the
// list being walked.
func forEachSub(dep *Signal, fn func(sub *Computed)) {
	for l := dep.subsHead; l != nil; l = l.nextSub {
		fn(l.sub)
	}
}

// forEachDep walks sub's dependency list in order.
func forEachDep(sub *Computed, fn func(dep *Signal)) {
	for l := sub.depsHead; l != nil; l = l.nextDep {
		fn(l.dep)
	}
}

// mark raises el's flags to at least newState (FlagCheck or FlagDirty) and,
// if that actually changed its state, propagates FlagCheck transitively to
// every subscriber. State only ever rises during a flush (clean < check <
// dirty), so marking is idempotent and terminates on the DAG.
func mark(el *Computed, newState NodeFlags) {
	if el.flags&(FlagCheck|FlagDirty) >= newState {
		return
	}
	el.flags = (el.flags &^ (FlagCheck | FlagDirty)) | newState

	forEachSub(el.Signal, func(sub *Computed) {
		mark(sub, FlagCheck)
	})
}

// markSubs starts a mark walk from a leaf whose value just actually
// changed: every direct subscriber must recompute unconditionally
// (FlagDirty), and mark's own recursion propagates FlagCheck from there to
// the rest of the transitively-reachable subscriber graph. Called by
// Signal.Write, Signal.WriteOptimistic, Transition.Commit, and async
// delivery — anywhere a node's
// committed value changes and its subscribers need to learn about it.
func markSubs(s *Signal) {
	forEachSub(s, func(sub *Computed) {
		mark(sub, FlagDirty)
	})
}
