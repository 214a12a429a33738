//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

func currentGID() int64 { return goid.Get() }

// GetRuntime returns the single process-wide Runtime. Every goroutine shares
// it: a Signal/Computed/Effect created on one goroutine behaves correctly
// when read, written, or settled-on from another, which matters for the
// ambient helpers (OnSettled, NewBatch, OnCleanup) that have no object of
// their own to resolve a Runtime from. Cross-goroutine dependency tracking
// safety is handled separately, by Tracker comparing goroutine IDs rather
// than by partitioning Runtimes.
var (
	once          sync.Once
	globalRuntime *Runtime
)

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})
	return globalRuntime
}
