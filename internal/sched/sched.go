// Package sched implements a cooperative timer scheduler on a virtual clock.
// Timers only fire from Advance, one at a time, on the caller's goroutine.
// This keeps game timing deterministic and independent of the platform frame rate.
package sched

import "time"

// MinInterval is the shortest interval a timer may repeat at.
const MinInterval = time.Millisecond

// Scheduler owns a virtual clock and the repeating timers armed on it.
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
}

// Timer is a repeating callback armed on a Scheduler.
type Timer struct {
	name     string
	interval time.Duration
	next     time.Duration
	seq      uint64
	fn       func(*Timer)
	stopped  bool
	fired    int
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms a timer that calls fn every interval, first at Now()+interval.
// The callback receives its own timer so it can stop itself.
func (s *Scheduler) Every(name string, interval time.Duration, fn func(*Timer)) *Timer {
	if interval < MinInterval {
		interval = MinInterval
	}
	s.seq++
	t := &Timer{
		name:     name,
		interval: interval,
		next:     s.now + interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt, firing due timers in deadline order.
// Timers due at the same instant fire in the order they were armed.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		t.fired++
		t.fn(t)
	}
	s.now = target
	s.prune()
}

// nextDue returns the earliest live timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// prune drops stopped timers.
func (s *Scheduler) prune() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(s.timers[len(live):])
	s.timers = live
}

// StopAll cancels every armed timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.prune()
}

// Active returns the number of armed timers.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// ActiveNamed returns the number of armed timers with the given name.
func (s *Scheduler) ActiveNamed(name string) int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && t.name == name {
			n++
		}
	}
	return n
}

// Stop cancels the timer. Safe to call from inside its own callback and more than once.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Active reports whether the timer is still armed.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Name returns the label the timer was armed with.
func (t *Timer) Name() string {
	return t.name
}

// Fired returns how many times the timer has fired.
func (t *Timer) Fired() int {
	return t.fired
}
