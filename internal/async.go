package internal

// AsyncResult is the settled outcome of one generation of an async compute:
// either a value or an error. Each fetch goroutine started by
// NewAsyncComputed sends exactly one of these to its watcher, which uses
// generation to discard stale deliveries from superseded goroutines (the
// in-flight identity check).
type AsyncResult struct {
	generation uint64
	value      any
	err        error
}

// AsyncComputed is a Computed whose fn launches a goroutine per recompute
// instead of returning synchronously. Reads observe StatusPending until the
// goroutine's result channel delivers, at which point the runtime applies it
// as an ordinary write (so it schedules subscribers exactly like a sync
// write would) — provided the delivery's generation still matches the
// current one; an older goroutine's late result is silently dropped.
type AsyncComputed struct {
	*Computed

	generation uint64
	fetch      func(prev any) (any, error)
}

func (r *Runtime) NewAsyncComputed(fetch func(prev any) (any, error), opts ComputedOptions) *AsyncComputed {
	ac := &AsyncComputed{fetch: fetch}

	computeFn := func(prev any) any {
		ac.generation++
		gen := ac.generation

		ac.Computed.statusFlags |= StatusPending
		ac.Computed.statusFlags &^= StatusError

		results := make(chan AsyncResult, 1)
		go func() {
			value, err := fetch(prev)
			results <- AsyncResult{generation: gen, value: value, err: err}
		}()

		r.spawnAsyncWatcher(ac, gen, results)

		return prev
	}

	// computeFn dereferences ac.Computed, so the node is built unrun and only
	// then run; holding the lock keeps a fast watcher from delivering first.
	r.lock()
	defer r.unlock()
	c := r.newDeferredComputed(computeFn, opts)
	c.statusFlags &^= StatusUninitialized
	ac.Computed = c
	r.recompute(c)

	return ac
}

// spawnAsyncWatcher bridges the worker goroutine's channel delivery back
// into the owning Runtime's single logical thread, guarded by the
// generation token so a superseded recompute's result never overwrites a
// newer one.
func (r *Runtime) spawnAsyncWatcher(ac *AsyncComputed, gen uint64, results chan AsyncResult) {
	go func() {
		result := <-results

		r.lock()
		defer r.unlock()

		if gen != ac.generation {
			return // stale: a newer recompute has already superseded this one
		}

		ac.Computed.statusFlags &^= StatusPending

		if result.err != nil {
			ac.Computed.setError(result.err)
		} else {
			ac.Computed.clearError()
			ac.Computed.pendingValue = &result.value
			ac.Computed.time = r.scheduler.tick()
		}

		markSubs(ac.Computed.Signal)
		r.heap.insertAll(ac.Computed.subs())
		r.pendingSignals = append(r.pendingSignals, ac.Computed.Signal)
		r.schedule()
		r.flush()
	}()
}
