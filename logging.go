package cthreadpool

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// poolLogger is the concrete logger type accepted by WithLogger: the
// stumpy JSON backend is this corpus's model implementation of logiface,
// per stumpy's own documentation ("intended as the model logger for the
// logiface package").
type poolLogger = logiface.Logger[*stumpy.Event]

// disabledLogger returns a logger at LevelDisabled, so that when the
// caller does not supply one via WithLogger, every call site's builder
// chain (Info()...Log(...)) short-circuits to a no-op instead of needing
// a nil check at every call site.
func disabledLogger() *poolLogger {
	return stumpy.L.New(stumpy.L.WithLevel(logiface.LevelDisabled))
}

// logTaskPanic emits a single structured log line for a recovered task
// panic. It never re-panics: logging a broken task must not also break
// the worker that recovered from it.
func (p *Pool) logTaskPanic(workerID int, recovered any) {
	p.opts.logger.Err().
		Int(`worker`, workerID).
		Str(`recovered`, panicString(recovered)).
		Log(`task panicked`)
}

func (p *Pool) logWorkerStarted(workerID int) {
	p.opts.logger.Debug().
		Int(`worker`, workerID).
		Log(`worker started`)
}

func (p *Pool) logWorkerStopped(workerID int) {
	p.opts.logger.Debug().
		Int(`worker`, workerID).
		Log(`worker stopped`)
}

func (p *Pool) logShutdownRequested() {
	p.opts.logger.Info().Log(`shutdown requested`)
}

func (p *Pool) logShutdownComplete() {
	p.opts.logger.Info().Log(`shutdown complete`)
}

func panicString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return `non-error panic value`
}
