package frame

import "sync"

// Loop is a Scheduler whose frames are driven manually with RunFrame.
// Headless hosts and tests use it in place of a display's vsync.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	ticks uint64
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestAnimationFrame queues fn for the next RunFrame.
func (l *Loop) RequestAnimationFrame(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
}

// Len returns the number of callbacks waiting for the next frame.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Ticks returns how many times RunFrame has been called.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// RunFrame runs the callbacks that were queued before it was called and
// returns how many ran. Callbacks queued while it runs wait for the next
// call, like requestAnimationFrame callbacks registered during a frame.
func (l *Loop) RunFrame() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.ticks++
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// RunUntilIdle runs frames until nothing is queued or limit frames have run.
// It returns the number of frames run.
func (l *Loop) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && l.Len() > 0 {
		l.RunFrame()
		n++
	}
	return n
}
