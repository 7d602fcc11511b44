package cthreadpool

import "errors"

// Standard errors.
var (
	// ErrInvalidSize is returned by New when asked to create a pool with
	// fewer than one worker.
	ErrInvalidSize = errors.New("cthreadpool: pool size must be at least 1")

	// ErrPoolClosed reports that a pool is closed. No function in this
	// package returns it: Submit and SubmitFuture calls made after Close
	// are silently dropped.
	ErrPoolClosed = errors.New("cthreadpool: pool is closed")

	// ErrFutureNotFound is the value AwaitFuture panics with when given a
	// future index that does not correspond to a currently pending or completed future, i.e.
	// it was never issued, or it has already been consumed and recycled.
	ErrFutureNotFound = errors.New("cthreadpool: future index not found")
)
