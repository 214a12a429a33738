package internal

import "iter"

// ComputedOptions configures a derived, memoized reactive value.
type ComputedOptions struct {
	Name   string
	Equals func(a, b any) bool
}

// Computed is a derived value: it is simultaneously a Signal (it has a
// value, a height, scheduling flags, and subscribers) and an Owner (its
// compute function may itself create nested signals/computeds/effects,
// which are disposed and recreated every time it reruns). depsHead/depsTail
// thread this node's own dependency list, separate from the subscriber list
// it inherits from *Signal.
type Computed struct {
	*Owner
	*Signal

	fn func(prev any) any

	initialized bool

	depsHead *DependencyLink
	depsTail *DependencyLink

	// deferredRun, when set (by Effect), replaces the default "run
	// synchronously and reinsert subscribers" recompute behavior with one
	// that enqueues the run onto a phase queue instead.
	deferredRun func(r *Runtime)

	// runCleanups are OnCleanup callbacks registered from inside c's own
	// compute function (as opposed to a nested owner's cleanups, which stay
	// on that owner and only run when it is disposed). They run at the
	// start of the next rerun, or at final disposal if there is no next
	// rerun.
	runCleanups []func()
}

func (r *Runtime) NewComputed(fn func(prev any) any, opts ComputedOptions) *Computed {
	return r.newComputed(fn, opts, true)
}

// newDeferredComputed builds the node without running it; the caller is
// responsible for scheduling its first run (used by Effect's Defer option).
func (r *Runtime) newDeferredComputed(fn func(prev any) any, opts ComputedOptions) *Computed {
	return r.newComputed(fn, opts, false)
}

func (r *Runtime) newComputed(fn func(prev any) any, opts ComputedOptions, eager bool) *Computed {
	r.lock()
	defer r.unlock()

	equals := opts.Equals
	if equals == nil {
		equals = defaultEquals
	}

	c := &Computed{
		Owner: r.NewOwner(),
		Signal: &Signal{
			rt:     r,
			name:   opts.Name,
			equals: equals,
		},
		fn: fn,
	}
	c.asComputed = c
	c.Owner.computed = c

	c.OnCleanup(func() {
		runCleanups := c.runCleanups
		c.runCleanups = nil
		for _, fn := range runCleanups {
			fn()
		}

		r.heap.remove(c)
		r.zombieHeap.remove(c)
		clearDeps(c)
		c.flags = FlagDisposed
	})

	if eager {
		r.recompute(c)
	} else {
		c.flags |= FlagDirty
		c.statusFlags |= StatusUninitialized
	}

	return c
}

// Read pulls the node fresh (recomputing if dirty, or walking a check chain
// transitively) before tracking it as a dependency and returning its value.
// This is the "pull" half of the push/pull hybrid: Write marks nodes
// dirty/check and (outside a batch) flushes them; a Read forces
// recomputation of a node still stale when it is read.
func (c *Computed) Read() any {
	r := c.rt
	if r == nil {
		r = GetRuntime()
	}
	r.lock()
	defer r.unlock()
	r.ensureFresh(c)
	return c.Signal.Read()
}

// run executes the compute function with c as both the current owner (for
// nested resource lifetimes) and the current dependency tracker. Children
// from the previous run are disposed first so a computed never leaks nested
// owners across reruns, and any cleanup the previous run registered
// directly on c (via OnCleanup called from inside the compute function
// itself, not from a nested owner) also runs now rather than waiting for
// c's own disposal. Returns whether the new value differs from the
// previous one by c.equals — a first run always counts as changed, since
// there is no previous value to compare against.
func (c *Computed) run() bool {
	c.DisposeChildren()

	runCleanups := c.runCleanups
	c.runCleanups = nil
	for _, fn := range runCleanups {
		fn()
	}

	prev := c.peek()
	wasInitialized := c.initialized

	c.flags |= FlagRecomputingDeps
	c.depsTail = nil

	var value any
	func() {
		defer func() {
			c.flags &^= FlagRecomputingDeps
		}()
		c.rt.tracker.runWithOwnerAndListener(c.Owner, c, func() {
			value = c.fn(prev)
		})
	}()

	trimDeps(c)

	c.initialized = true

	changed := !wasInitialized || !c.equals(prev, value)
	if changed {
		c.pendingValue = &value
		c.time = c.rt.scheduler.tick()
	}

	return changed
}

// Deps iterates this node's own dependency list in order.
func (c *Computed) Deps() iter.Seq[*Signal] {
	return func(yield func(*Signal) bool) {
		for l := c.depsHead; l != nil; l = l.nextDep {
			if !yield(l.dep) {
				return
			}
		}
	}
}

func (c *Computed) hasDeps() bool { return c.depsHead != nil }
