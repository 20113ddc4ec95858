package core

import "time"

type periodicTimer struct {
	id       TimerID
	interval time.Duration
	next     time.Duration
}

// Scheduler holds periodic alarms that are checked once per tick.
// Due alarms become TimerFired events on the queue, so the simulation sees
// them in the same ordered pass as player input.
type Scheduler struct {
	timers []periodicTimer
}

// NewScheduler creates a scheduler with no timers.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers (or re-arms) a timer that first fires one interval after now.
// Non-positive intervals are ignored.
func (s *Scheduler) Every(id TimerID, interval time.Duration, now time.Duration) {
	if interval <= 0 {
		return
	}
	s.Cancel(id)
	s.timers = append(s.timers, periodicTimer{id: id, interval: interval, next: now + interval})
}

// Cancel removes a timer. Unknown IDs are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}

// Poll pushes one TimerFired event for every period that has elapsed up to
// now and returns how many were pushed. A late poll delivers every missed
// period; alarms keep their original phase.
func (s *Scheduler) Poll(now time.Duration, q *EventQueue) int {
	fired := 0
	for i := range s.timers {
		t := &s.timers[i]
		for t.next <= now {
			q.Push(TimerFiredEvent(t.id))
			t.next += t.interval
			fired++
		}
	}
	return fired
}
