package frame

import "sync/atomic"

// Scheduler is the host primitive that runs fn once before the next repaint.
// Implementations may run fn on a later tick of the host event loop but must
// not run it synchronously inside RequestAnimationFrame.
type Scheduler interface {
	RequestAnimationFrame(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// RequestAnimationFrame calls f(fn).
func (f SchedulerFunc) RequestAnimationFrame(fn func()) {
	f(fn)
}

// State is the per-widget pending-frame flag. The zero value is Idle.
// A State must not be copied after first use.
type State struct {
	pending atomic.Bool
}

// Pending reports whether a frame has been scheduled and has not fired yet.
func (s *State) Pending() bool {
	return s.pending.Load()
}

// Request schedules draw on sched unless a frame is already pending.
// It reports whether this call submitted the frame.
func (s *State) Request(sched Scheduler, draw func()) bool {
	if !s.pending.CompareAndSwap(false, true) {
		return false
	}
	sched.RequestAnimationFrame(func() {
		s.pending.Store(false)
		draw()
	})
	return true
}
