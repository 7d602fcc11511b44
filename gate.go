package cthreadpool

import "sync"

// gate is a reusable mutex-plus-condition-variable signal, the single
// blocking primitive used throughout the pool: the manager's inbox, each
// worker's wakeup, the join barrier, and the per-future completion signal
// are all a *gate under the hood. It layers a sticky boolean flag on top
// of sync.Cond so a producer that fires before a consumer starts waiting
// is not lost, matching the "informed" semantics the manager loop and the
// worker loop both rely on.
//
// Three call conventions exist side by side:
//   - Lock/Unlock are raw mutex operations, for callers that need to hold
//     the gate's lock across a larger critical section (e.g. SubmitFuture
//     allocating a future slot under the manager's inbox lock, so the
//     manager cannot be mid-dispatch).
//   - Signal/Clear mutate the ready flag and assume the caller already
//     holds the lock via Lock.
//   - Wait/Done are self-contained: Wait acquires the lock and blocks
//     until the flag is set, returning with the lock held; Done clears
//     the flag and releases the lock.
type gate struct {
	mu    sync.Mutex
	cond  *sync.Cond
	ready bool
}

func newGate() *gate {
	g := &gate{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Lock acquires the gate's underlying mutex directly.
func (g *gate) Lock() { g.mu.Lock() }

// Unlock releases the gate's underlying mutex directly.
func (g *gate) Unlock() { g.mu.Unlock() }

// Signal marks the gate ready and wakes every waiter blocked in Wait.
// The caller must hold the lock, typically via Lock. A broadcast (not a
// single wakeup) is required because the join gate can have any number
// of concurrent Join callers parked in Wait, all of whom must return
// once the pool goes quiet; the inbox and per-worker gates only ever
// have one waiter, so the broadcast costs them nothing extra.
func (g *gate) Signal() {
	g.ready = true
	g.cond.Broadcast()
}

// Clear marks the gate not-ready without waking anyone. The caller must
// hold the lock, typically via Lock. Used by the level-triggered join
// gate: the next submission clears it so a fresh Join call blocks again.
func (g *gate) Clear() {
	g.ready = false
}

// Wait blocks until the gate has been signalled, returning with the lock
// held so the caller can drain whatever state the signal announced.
func (g *gate) Wait() {
	g.mu.Lock()
	for !g.ready {
		g.cond.Wait()
	}
}

// Done clears the ready flag and releases the lock acquired by Wait. Use
// this for edge-triggered gates (the manager inbox, a worker's wakeup).
func (g *gate) Done() {
	g.ready = false
	g.mu.Unlock()
}
