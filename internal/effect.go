package internal

// EffectOptions configures a render or user effect.
type EffectOptions struct {
	Name string

	// Defer skips the effect's first run at creation time; it runs for the
	// first time on the next flush instead, alongside every other queued
	// effect of its phase.
	Defer bool

	// OnError, if set, is invoked (instead of propagating the panic to the
	// owner chain) when effectFn panics.
	OnError func(any)
}

// Effect is a Computed whose return value is a cleanup closure rather than a
// tracked value: it exists purely for its side effects, queued and run in
// two phases per flush (render effects before user effects), each phase
// ordered by height within itself. Its first run happens synchronously at
// creation (unless Defer is set); every subsequent rerun is enqueued onto
// its phase instead of running inline while the height heap drains.
type Effect struct {
	*Computed

	typ      EffectType
	effectFn func() func()
	cleanup  func()
}

func (r *Runtime) NewEffect(typ EffectType, fn func() func(), opts EffectOptions) *Effect {
	r.lock()
	defer r.unlock()

	e := &Effect{typ: typ, effectFn: fn}

	computeFn := func(prev any) any {
		if e.cleanup != nil {
			cleanup := e.cleanup
			e.cleanup = nil
			cleanup()
		}
		e.cleanup = e.effectFn()
		return nil
	}

	copts := ComputedOptions{Name: opts.Name}

	// Built unrun so the OnError handler is already in place for the first
	// run, which then happens synchronously here unless Defer is set.
	c := r.newDeferredComputed(computeFn, copts)
	e.Computed = c

	if opts.OnError != nil {
		c.OnError(opts.OnError)
	}

	if !opts.Defer {
		c.statusFlags &^= StatusUninitialized
		r.recompute(c)
	}

	c.deferredRun = func(r *Runtime) {
		r.queue.enqueue(e.typ, func() {
			// disposed after being queued (e.g. by an earlier effect in the
			// same phase): a disposed node never reruns
			if c.flags.has(FlagDisposed) {
				return
			}
			if c.run() {
				r.heap.insertAll(c.subs())
			}
		})
	}

	c.OnCleanup(func() {
		if e.cleanup != nil {
			cleanup := e.cleanup
			e.cleanup = nil
			cleanup()
		}
	})

	if opts.Defer {
		r.heap.insert(c)
		r.schedule()
	}

	return e
}
