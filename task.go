package cthreadpool

import "time"

// taskKind distinguishes the three kinds of work a worker can receive.
type taskKind int

const (
	taskRoutine taskKind = iota // fire-and-forget, result discarded
	taskFuture                  // result stored into a future slot
	taskDie                     // worker should exit its loop
)

// task is the unit of work handed from the manager to a worker. It is
// copied by value into a worker's single-slot inbox, never shared.
// submittedAt is stamped at submission time purely for the optional
// wait-time metric; it costs one time.Now() call per submission whether
// or not metrics are enabled, which this corpus's teacher accepts
// elsewhere (eventloop's own metrics hooks do the same) in exchange for
// not needing a second task shape.
type task struct {
	kind        taskKind
	fn          func(any) any
	arg         any
	future      int // valid only when kind == taskFuture
	submittedAt time.Time
}

// eventKind distinguishes the events the manager's inbox can carry.
type eventKind int

const (
	eventTaskSubmitted eventKind = iota
	eventWorkerDone
	eventShutdownRequested
)

// event is the unit pushed onto the manager's event ring. Which payload
// fields are meaningful is selected by kind, as marked on each field.
type event struct {
	kind   eventKind
	task   task          // eventTaskSubmitted
	worker int           // eventWorkerDone: which worker finished
	wait   time.Duration // eventWorkerDone: submission to start of run
	run    time.Duration // eventWorkerDone: time spent running the task
}
