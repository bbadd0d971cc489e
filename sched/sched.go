package sched

import "sync/atomic"

// closed is the shared already-done channel backing zero Handles.
var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// pending counts scheduled tasks that have not finished yet.
var pending atomic.Int64

// Handle is an opaque dependency token: it completes when the work it stands
// for has finished. The zero Handle is already complete.
type Handle struct {
	done <-chan struct{}
}

// Done returns a channel closed upon completion, suitable for select.
func (h Handle) Done() <-chan struct{} {
	if h.done == nil {
		return closed
	}
	return h.done
}

// Complete blocks until the work behind the handle has finished.
func (h Handle) Complete() {
	if h.done != nil {
		<-h.done
	}
}

// IsComplete reports whether the work has already finished, without blocking.
func (h Handle) IsComplete() bool {
	if h.done == nil {
		return true
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Schedule runs task once every dependency has completed and returns a Handle
// for the task itself. A nil task acts as a pure join point. Dependencies are
// awaited in order; ordering among them is irrelevant since all must finish.
func Schedule(task func(), deps ...Handle) Handle {
	ch := make(chan struct{})
	pending.Add(1)
	go func() {
		defer pending.Add(-1)
		defer close(ch)
		for _, d := range deps {
			d.Complete()
		}
		if task != nil {
			task()
		}
	}()

	return Handle{done: ch}
}

// Combine returns a Handle that completes once all deps have completed.
func Combine(deps ...Handle) Handle {
	return Schedule(nil, deps...)
}

// Pending returns the number of scheduled tasks that have not finished yet.
// Useful as a drain check in tests and shutdown paths.
func Pending() int64 {
	return pending.Load()
}
