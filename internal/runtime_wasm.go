//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

// currentGID is a stub on wasm: the browser/wasm build is single-threaded,
// so there is no concurrent goroutine to guard the tracker against.
func currentGID() int64 { return 0 }
