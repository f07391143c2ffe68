package scheduler

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing fires until
// Advance is called.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m     *Manual
	seq   uint64
	when  time.Duration
	f     func()
	fired bool
	done  bool
}

// NewManual creates a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, seq: m.seq, when: m.now + d, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves the clock forward by d, running every callback that becomes
// due in deadline order. Callbacks scheduled by a running callback also fire
// if their deadline falls inside the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.nextDue(end)
		if t == nil {
			break
		}
		m.now = t.when
		m.remove(t)
		t.fired = true
		t.f()
	}
	m.now = end
}

func (m *Manual) nextDue(end time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].when == m.pending[j].when {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].when < m.pending[j].when
	})
	if m.pending[0].when > end {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
