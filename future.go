package cthreadpool

// futureState mirrors the three states a future slot can be in: never
// allocated, in flight, or holding a result awaiting collection.
type futureState int

const (
	futureNotPresent futureState = iota
	futureDoing
	futureDone
)

// futureSlot holds one in-flight or completed future. gate is signalled
// exactly once, by the manager goroutine, when the worker running this
// future's task reports completion.
type futureSlot struct {
	state  futureState
	gate   *gate
	result any
}

// futureSlab is an arena of future slots addressed by integer index
// rather than pointer, so the backing array can be grown (and slots
// recycled) without invalidating handles already returned to callers.
//
// Unlike gate, ring, and worker, futureSlab has no lock of its own: per
// §4.3's concurrency note, every method here must be called with the
// pool's manager-inform gate already held by the caller (directly, via
// Lock/Unlock, not via a producer-signal). That is what lets SubmitFuture
// allocate a slot without racing the manager's dispatch loop, which may
// itself be holding live references into these slots at the same moment.
type futureSlab struct {
	slots     []futureSlot
	freeStack []int
	freeTop   int
	highWater int
}

func newFutureSlab(capacityHint int) *futureSlab {
	if capacityHint < 1 {
		capacityHint = 1
	}
	return &futureSlab{
		slots:     make([]futureSlot, capacityHint),
		freeStack: make([]int, capacityHint),
	}
}

// allocate reserves a slot, marks it futureDoing, and returns its index.
// It pops from the free stack first; only once that stack is empty does
// it bump the high-water mark, growing (doubling) the arena if needed.
func (s *futureSlab) allocate() int {
	if s.freeTop > 0 {
		s.freeTop--
		idx := s.freeStack[s.freeTop]
		s.initSlot(idx)
		return idx
	}

	if s.highWater == len(s.slots) {
		s.grow()
	}
	idx := s.highWater
	s.highWater++
	s.initSlot(idx)
	return idx
}

func (s *futureSlab) initSlot(idx int) {
	s.slots[idx] = futureSlot{state: futureDoing, gate: newGate()}
}

func (s *futureSlab) grow() {
	newCap := len(s.slots) * 2
	newSlots := make([]futureSlot, newCap)
	copy(newSlots, s.slots)
	s.slots = newSlots
	newFree := make([]int, newCap)
	copy(newFree, s.freeStack)
	s.freeStack = newFree
}

// release returns idx to the free stack. When the free stack covers every
// slot handed out so far (freeTop reaches the high-water mark, so nothing
// is outstanding), both cursors are reset to zero instead of carried
// forward — a coarse compaction avoiding unbounded stack growth under
// churn.
func (s *futureSlab) release(idx int) {
	s.slots[idx] = futureSlot{state: futureNotPresent}
	s.freeStack[s.freeTop] = idx
	s.freeTop++
	if s.freeTop == s.highWater {
		// every slot ever allocated is now free: reset instead of
		// carrying the stack forward, so a create/destroy-churn workload
		// does not make the free stack grow without bound.
		s.freeTop = 0
		s.highWater = 0
	}
}

// lookup validates idx and returns the slot's gate, for a caller about to
// block outside the manager-inform critical section.
func (s *futureSlab) lookup(idx int) *gate {
	if idx < 0 || idx >= len(s.slots) || s.slots[idx].state == futureNotPresent {
		panic(ErrFutureNotFound)
	}
	return s.slots[idx].gate
}

// store writes a completed future's result. Called exactly once per
// future, by the manager while dispatching the worker-done event that
// reports the future's task as finished.
func (s *futureSlab) store(idx int, result any) {
	slot := &s.slots[idx]
	slot.state = futureDone
	g := slot.gate
	g.Lock()
	slot.result = result
	g.Signal()
	g.Unlock()
}

// resultLocked reads back a completed slot's value. The caller must hold
// the pool's manager-inform gate, like every other slab method, and must
// already have seen the slot's gate signalled (Wait on the gate returned
// from lookup). store writes the result while the manager holds that same
// inform lock, which is what makes store's write visible here.
func (s *futureSlab) resultLocked(idx int) any {
	return s.slots[idx].result
}
