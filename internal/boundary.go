package internal

// BoundaryKind distinguishes an error boundary (catches StatusError, raised
// when a read observes a node whose compute function failed) from a
// suspense boundary (catches NotReadyError, raised when a read observes a
// node still waiting on an in-flight async computation). A boundary that
// sets both bits catches either.
type BoundaryKind uint8

const (
	BoundaryError BoundaryKind = 1 << iota
	BoundarySuspense
)

// Boundary wraps a Computed whose value is either content's result or
// fallback's, depending on whether content panicked with a status this
// boundary's kind watches for. Unlike an Owner's OnError, which only
// catches and never re-renders, a Boundary recomputes: when the node that
// raised the status later settles (an async fetch resolves, a write clears
// the error), the boundary's own dependency on it reschedules this Computed
// and it tries content() again.
type Boundary struct {
	*Computed
}

func (r *Runtime) NewBoundary(kind BoundaryKind, content func() any, fallback func(error) any, opts ComputedOptions) *Boundary {
	b := &Boundary{}

	computeFn := func(prev any) any {
		var value any
		var caught any
		func() {
			defer func() { caught = recover() }()
			value = content()
		}()

		if caught == nil {
			return value
		}

		switch e := caught.(type) {
		case *NotReadyError:
			if kind&BoundarySuspense != 0 {
				return fallback(nil)
			}
		case *StatusError:
			if kind&BoundaryError != 0 {
				return fallback(asErr(e.Err))
			}
		}
		panic(caught)
	}

	b.Computed = r.NewComputed(computeFn, opts)
	return b
}
