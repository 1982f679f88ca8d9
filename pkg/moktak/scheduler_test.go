package moktak

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	if n := s.Advance(5 * time.Millisecond); n != 0 {
		t.Fatalf("fired %d timers before due", n)
	}
	if n := s.Advance(5 * time.Millisecond); n != 2 {
		t.Fatalf("fired %d timers at 10ms, want 2", n)
	}
	s.Advance(time.Second)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order: got %v, want %v", order, want)
	}
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Pending(id) {
		t.Fatal("timer should be pending")
	}
	if !s.Cancel(id) {
		t.Fatal("Cancel should report true for a pending timer")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	var second TimerID
	fired := false
	s.After(10*time.Millisecond, func() { s.Cancel(second) })
	second = s.After(10*time.Millisecond, func() { fired = true })

	if n := s.Advance(10 * time.Millisecond); n != 1 {
		t.Errorf("fired %d, want 1", n)
	}
	if fired {
		t.Error("timer cancelled by an earlier callback must not fire")
	}
}

func TestSchedulerRescheduleWaitsForNextRun(t *testing.T) {
	s := NewScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(0, tick)
	}
	s.After(0, tick)

	s.Advance(0)
	if count != 1 {
		t.Fatalf("count after first run: got %d, want 1", count)
	}
	s.Advance(0)
	if count != 2 {
		t.Errorf("count after second run: got %d, want 2", count)
	}
}

func TestSchedulerTickThenRunDue(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(10*time.Millisecond, func() { fired = true })

	s.Tick(10 * time.Millisecond)
	if fired {
		t.Fatal("Tick must not run callbacks")
	}
	if s.Now() != 10*time.Millisecond {
		t.Errorf("Now: got %v, want 10ms", s.Now())
	}
	s.RunDue()
	if !fired {
		t.Error("RunDue should run the due timer")
	}
}

func TestSchedulerNegativeDelayAndClear(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(-time.Second, func() { fired++ })
	s.After(time.Second, func() { fired++ })

	s.Advance(0)
	if fired != 1 {
		t.Fatalf("negative delay should fire immediately, fired=%d", fired)
	}
	s.Clear()
	s.Advance(2 * time.Second)
	if fired != 1 {
		t.Errorf("Clear should drop pending timers, fired=%d", fired)
	}
}
