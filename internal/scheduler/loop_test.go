package scheduler

import (
	"testing"
	"time"
)

func waitFire(t *testing.T, l *Loop) Fire {
	t.Helper()
	select {
	case f := <-l.Fires():
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fire")
		return Fire{}
	}
}

func TestLoopRunsCallbackOnDispatch(t *testing.T) {
	l := NewLoop(4)
	defer l.Close()

	ran := false
	l.AfterFunc(5*time.Millisecond, func() { ran = true })

	f := waitFire(t, l)
	if ran {
		t.Fatal("callback ran before Dispatch")
	}
	if !l.Dispatch(f) {
		t.Error("Dispatch() = false, want true")
	}
	if !ran {
		t.Error("callback did not run")
	}
	if l.Dispatch(f) {
		t.Error("second Dispatch() = true, want false")
	}
}

func TestLoopStopAfterExpiryDropsFire(t *testing.T) {
	l := NewLoop(4)
	defer l.Close()

	ran := false
	timer := l.AfterFunc(time.Millisecond, func() { ran = true })
	f := waitFire(t, l)

	if !timer.Stop() {
		t.Error("Stop() = false, want true for an undispatched timer")
	}
	if l.Dispatch(f) {
		t.Error("Dispatch() of a stopped timer = true")
	}
	if ran {
		t.Error("stopped callback ran")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestLoopStopBeforeExpiry(t *testing.T) {
	l := NewLoop(4)
	defer l.Close()

	timer := l.AfterFunc(time.Hour, func() {})
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", l.Pending())
	}
	if !timer.Stop() {
		t.Error("Stop() = false, want true")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestLoopClose(t *testing.T) {
	l := NewLoop(1)
	l.AfterFunc(time.Hour, func() {})
	l.Close()
	l.Close()

	if l.Pending() != 0 {
		t.Errorf("Pending() after Close = %d, want 0", l.Pending())
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done() not closed after Close")
	}
	timer := l.AfterFunc(time.Millisecond, func() {})
	if timer.Stop() {
		t.Error("Stop() of a timer created after Close = true")
	}
}
