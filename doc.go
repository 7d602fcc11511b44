// Package cthreadpool implements a fixed-size worker pool with fire-and-forget
// routine submission and future-returning submission, built around a single
// manager goroutine that serializes all scheduling-state mutation.
//
// A [Pool] owns a fixed number of worker goroutines and one manager
// goroutine. Producers never touch worker state directly: every submission
// is turned into an event, pushed onto an event ring behind a [gate], and
// processed exclusively by the manager goroutine. This keeps the task
// queue and the idle-worker stack single-writer without requiring a lock
// to be held across the whole pool lifetime. The future slab is the
// exception: SubmitFuture and AwaitFuture allocate and release its slots
// directly, under the same lock the manager holds while dispatching.
package cthreadpool
