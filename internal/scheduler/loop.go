package scheduler

import (
	"sync"
	"time"
)

// Fire reports that a Loop timer expired. The owning event loop passes it
// back to Dispatch.
type Fire struct {
	ID uint64
}

// Loop is a Scheduler for single-threaded event loops. Timers run on their
// own goroutines but only enqueue a Fire; the callback itself runs when the
// loop calls Dispatch.
type Loop struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]func()
	fires   chan Fire
	done    chan struct{}
	closed  bool
}

// NewLoop creates a Loop whose Fire queue holds up to buffer events before
// timer goroutines block.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		pending: make(map[uint64]func()),
		fires:   make(chan Fire, buffer),
		done:    make(chan struct{}),
	}
}

// Fires returns the channel the event loop reads expired timers from.
func (l *Loop) Fires() <-chan Fire {
	return l.fires
}

// Done is closed by Close. Event loops waiting on Fires select on it so
// they stop waiting once the loop is shut down.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// AfterFunc schedules f to run on the event loop after d.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	l.mu.Lock()
	l.next++
	id := l.next
	closed := l.closed
	if !closed {
		l.pending[id] = f
	}
	l.mu.Unlock()

	lt := &loopTimer{loop: l, id: id}
	if closed {
		return lt
	}
	lt.timer = time.AfterFunc(d, func() {
		select {
		case l.fires <- Fire{ID: id}:
		case <-l.done:
		}
	})
	return lt
}

// Dispatch runs the callback for an expired timer. It must be called from
// the event loop goroutine. It returns false when the timer was stopped in
// the meantime.
func (l *Loop) Dispatch(f Fire) bool {
	l.mu.Lock()
	fn, ok := l.pending[f.ID]
	delete(l.pending, f.ID)
	l.mu.Unlock()
	if !ok {
		return false
	}
	fn()
	return true
}

// Pending returns the number of callbacks still waiting to be dispatched.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Close drops every pending callback and releases blocked timer goroutines.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.pending = make(map[uint64]func())
	close(l.done)
}

type loopTimer struct {
	loop  *Loop
	id    uint64
	timer *time.Timer
}

func (t *loopTimer) Stop() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	if _, ok := t.loop.pending[t.id]; !ok {
		return false
	}
	delete(t.loop.pending, t.id)
	return true
}
