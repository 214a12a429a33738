package internal

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Runtime owns one reactive graph: its height heaps, its tracker, its
// scheduler, and the root of its ownership tree. GetRuntime (see
// runtime_default.go / runtime_wasm.go) hands back a single process-wide
// instance, so a signal created on one goroutine reads, writes, and settles
// correctly no matter which goroutine touches it afterward; Tracker guards
// against a different goroutine accidentally linking itself as a dependency
// mid-recompute. mu, guarded through lock/unlock below, serializes graph
// mutation between whichever goroutine is driving a Write/Read/flush and a
// worker goroutine delivering an async result (see async.go's
// spawnAsyncWatcher): every entry point that can be reached from either side
// (Signal.Write, Computed.Read, Transition.Run/Commit/Abort, newComputed,
// spawnAsyncWatcher's delivery) takes the lock, and reentrant calls from
// deeper in the same call stack (an effect's cleanup writing another signal,
// a compute function reading one of its own dependencies) detect that the
// calling goroutine already holds it and skip straight through instead of
// deadlocking.
type Runtime struct {
	mu        sync.Mutex
	lockOwner atomic.Int64
	lockDepth int // only ever touched by the goroutine currently holding mu

	heap       *HeightHeap // live/dirty nodes, recomputed on drain
	zombieHeap *HeightHeap // height-adjustment-only membership, no recompute

	tracker   *Tracker
	batcher   *Batcher
	scheduler *Scheduler
	queue     *EffectQueue

	pendingSignals []*Signal

	activeTransition *Transition

	rootOwner *Owner

	logger  zerolog.Logger
	metrics *Metrics
}

func NewRuntime() *Runtime {
	r := &Runtime{
		heap:       newHeightHeap(FlagInHeap),
		zombieHeap: newHeightHeap(FlagInHeapHeight),
		tracker:    newTracker(),
		batcher:    newBatcher(),
		scheduler:  newScheduler(),
		queue:      newEffectQueue(),
		logger:     newNoopLogger(),
	}
	r.rootOwner = r.NewOwner()
	return r
}

// lock acquires r.mu, reentrantly: a goroutine that already holds it (found
// via currentGID, the same goroutine-id lookup Tracker uses) just bumps a
// depth counter instead of blocking on itself. Every call must be paired
// with unlock, typically via defer right after calling lock.
func (r *Runtime) lock() {
	gid := currentGID()
	if r.lockOwner.Load() == gid {
		r.lockDepth++
		return
	}
	r.mu.Lock()
	r.lockOwner.Store(gid)
	r.lockDepth = 1
}

func (r *Runtime) unlock() {
	r.lockDepth--
	if r.lockDepth == 0 {
		r.lockOwner.Store(0)
		r.mu.Unlock()
	}
}

func (r *Runtime) CurrentOwner() *Owner { return r.tracker.owner() }

func (r *Runtime) CurrentComputation() *Computed { return r.tracker.listener() }

// OnCleanup registers fn on the current owner. If the current owner is
// itself the owner of the computed currently running (i.e. fn was
// registered from inside that computed's own compute function, not from a
// nested owner it created), fn runs before the computed's next rerun
// instead of waiting for the computed's own disposal.
func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner == nil {
		return
	}
	if owner.computed != nil && owner.computed == r.CurrentComputation() {
		owner.computed.runCleanups = append(owner.computed.runCleanups, fn)
		return
	}
	owner.OnCleanup(fn)
}

// UntrackWith runs fn with dependency tracking suspended.
func (r *Runtime) UntrackWith(fn func()) {
	r.tracker.untracked(fn)
}

func (r *Runtime) OnError(fn func(any)) {
	if owner := r.CurrentOwner(); owner != nil {
		owner.OnError(fn)
	}
}

// OnSettled registers fn to run once the current flush (and every effect it
// transitively queues) has fully drained; registered while no flush is
// running, it waits for the next one.
func (r *Runtime) OnSettled(fn func()) {
	r.lock()
	defer r.unlock()
	r.scheduler.onSettled(fn)
}

// OnRenderSettled registers fn to run once the render effect phase of the
// current flush iteration finishes, ahead of that same iteration's user
// effect phase; registered while no flush is running, it waits for the next
// one.
func (r *Runtime) OnRenderSettled(fn func()) {
	r.lock()
	defer r.unlock()
	r.scheduler.onRenderSettled(fn)
}

// OnUserSettled registers fn to run once the user effect phase of the
// current flush iteration finishes, even if that phase's effects queue a
// further iteration afterward; registered while no flush is running, it
// waits for the next one.
func (r *Runtime) OnUserSettled(fn func()) {
	r.lock()
	defer r.unlock()
	r.scheduler.onUserSettled(fn)
}

// StartTransition opens a new Transition and hands it to action so every
// write action performs is captured as pending instead of committed
// immediately; returns the Transition so the caller can Commit or Abort it.
func (r *Runtime) StartTransition(action func()) *Transition {
	t := r.newTransition()
	t.Run(action)
	return t
}

func (r *Runtime) schedule() {
	r.scheduler.schedule()
	if !r.batcher.isBatching() && !r.scheduler.isRunning() {
		r.flush()
	}
}

// flush drains the dirty height heap (recomputing each node in height
// order), commits every pending signal write from this cycle, then runs
// queued render effects followed by user effects, repeating if any of that
// work rescheduled the runtime.
func (r *Runtime) flush() {
	r.logger.Debug().Msg("flush start")

	err := r.scheduler.run(func() error {
		r.heap.drain(func(c *Computed) {
			r.recompute(c)
		})

		signals := r.pendingSignals
		r.pendingSignals = nil
		for _, s := range signals {
			s.commit()
			s.notifyUnobserved()
		}

		r.queue.runPhase(EffectTypeRender)
		r.scheduler.drainRenderSettled()

		r.queue.runPhase(EffectTypeUser)
		r.scheduler.drainUserSettled()

		r.metrics.setHeapSize(r.heap.len())
		r.metrics.onFlush()

		return nil
	})

	if err != nil {
		r.logger.Error().Err(err).Msg("flush aborted")
		panic(err)
	}

	r.logger.Debug().Msg("flush end")
}

// recompute reruns a Computed's fn and, if the rerun changed its value,
// re-inserts its subscribers into the heap so they get rechecked in this same
// drain pass (a raised height alone does not re-insert them). A node with deferredRun set (Effect)
// enqueues its actual run onto a phase queue instead of running inline here.
func (r *Runtime) recompute(c *Computed) {
	if c.flags.has(FlagDisposed) {
		return
	}
	if c.flags.has(FlagRecomputingDeps) {
		panic(&CycleFaultError{Node: c})
	}

	if c.flags.has(FlagCheck) && !c.flags.has(FlagDirty) {
		if !r.anyDepChanged(c) {
			c.flags &^= FlagCheck
			return
		}
	}

	c.flags &^= (FlagCheck | FlagDirty)

	if c.deferredRun != nil {
		c.deferredRun(r)
		return
	}

	changed := c.run()
	r.metrics.onRecompute()
	if changed {
		r.propagateLane(c)
		// A Computed never goes through flush's pendingSignals commit loop the
		// way a directly-written Signal does, so unless propagateLane just
		// staged it under a still-open lane (revertible via that lane's own
		// commit/revert), this run's value is final now: commit it so
		// c.Signal.value holds a real prior result rather than its zero value,
		// which is what a future lane revert (reached via some later
		// recompute) would otherwise fall back to.
		if c.lane == nil {
			c.Signal.commit()
		}
		r.heap.insertAll(c.subs())
	}
}

// propagateLane implements the downstream half of optimistic-lane tagging:
// a node that just recomputed off a dependency carrying a lane (a signal
// WriteOptimistic staged, still uncommitted) itself gets tagged with that
// lane, so a later read of c can answer IsPending correctly and c's value
// reverts along with its source if the lane is aborted instead of
// committed. A Computed is never itself the direct target of
// WriteOptimistic (only a Signal is written directly), so any lane it
// already carries only ever got there by an earlier propagation — there is
// no "node has its own active override, keep it" case to preserve here,
// unlike Signal.Write's direct tagging; a pre-existing different lane
// merges with the new one via union/find instead.
func (r *Runtime) propagateLane(c *Computed) {
	var source *Lane
	forEachDep(c, func(dep *Signal) {
		if source == nil && dep.lane != nil {
			source = find(dep.lane)
		}
	})
	if source == nil {
		return
	}

	if c.lane == nil {
		c.lane = source
		source.track(c.Signal)
		return
	}
	if find(c.lane) == source {
		return
	}
	union(source, c.lane)
	c.lane = find(c.lane)
}

// anyDepChanged walks c's dependency list, pulling each one fresh first (a
// dependency that is itself Check-flagged must be resolved before we know
// whether it actually changed), and compares against the time this node
// last observed it.
func (r *Runtime) anyDepChanged(c *Computed) bool {
	changed := false
	forEachDep(c, func(dep *Signal) {
		if changed {
			return
		}
		if dep.asComputed != nil {
			r.ensureFresh(dep.asComputed)
		}
		if dep.time > c.time {
			changed = true
		}
	})
	return changed
}

// ensureFresh is the pull half of the hybrid scheduler: given a node that
// may be stale (Check or Dirty flagged, or never yet run), force it to a
// known-fresh state before a Read returns its value.
func (r *Runtime) ensureFresh(c *Computed) {
	if c.flags.has(FlagDisposed) {
		return
	}
	if !c.initialized || c.flags.has(FlagDirty) {
		r.heap.remove(c)
		r.recompute(c)
		return
	}
	if c.flags.has(FlagCheck) {
		if r.anyDepChanged(c) {
			r.heap.remove(c)
			c.flags |= FlagDirty
			r.recompute(c)
		} else {
			c.flags &^= FlagCheck
		}
	}
}
