// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "time"

// Scheduler is the cooperative task queue driving the async effect.
// It is the one shared mutable structure in the system: a single-owner
// FIFO plus a deadline-ordered timer list, owned by whichever call drives
// [Scheduler.Drain]. Everything runs on that caller's goroutine; a task
// never runs while another evaluation step is in progress. Its lifetime
// matches one run of the whole program — create one per [RunAsync], do not
// keep a package-level instance.
type Scheduler struct {
	tasks  []func()
	timers []timerEntry
}

type timerEntry struct {
	at time.Time
	fn func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Push appends a task to the run queue.
func (s *Scheduler) Push(fn func()) {
	s.tasks = append(s.tasks, fn)
}

// After schedules a task to run once d has elapsed, relative to the time of
// the call. Tasks with equal deadlines keep submission order.
func (s *Scheduler) After(d time.Duration, fn func()) {
	e := timerEntry{at: time.Now().Add(d), fn: fn}
	i := len(s.timers)
	for i > 0 && s.timers[i-1].at.After(e.at) {
		i--
	}
	s.timers = append(s.timers, timerEntry{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = e
}

// Drain runs queued tasks in FIFO order until both the run queue and the
// timer list are empty, sleeping until the earliest deadline when only
// timers remain. Tasks may push further tasks and timers.
func (s *Scheduler) Drain() {
	for {
		if len(s.tasks) > 0 {
			fn := s.tasks[0]
			s.tasks = s.tasks[1:]
			fn()
			continue
		}
		if len(s.timers) == 0 {
			return
		}
		if d := time.Until(s.timers[0].at); d > 0 {
			time.Sleep(d)
		}
		now := time.Now()
		for len(s.timers) > 0 && !s.timers[0].at.After(now) {
			s.tasks = append(s.tasks, s.timers[0].fn)
			s.timers = s.timers[1:]
		}
	}
}
