package cthreadpool

import "runtime"

// DefaultWorkerCount returns a reasonable default pool size: the current
// GOMAXPROCS value. It does not itself adjust GOMAXPROCS — a library
// must not mutate global runtime state as a side effect of being
// imported — so callers running in a container with a fractional CPU
// quota should blank-import go.uber.org/automaxprocs (or set GOMAXPROCS
// explicitly) before calling this.
func DefaultWorkerCount() int {
	return runtime.GOMAXPROCS(0)
}
