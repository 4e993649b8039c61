// Package scheduler runs deferred and repeating tasks from a game loop.
// It never starts goroutines or timers of its own: tasks run only when the
// owner calls Advance with the loop's current time.
package scheduler

import "time"

// Task is a handle to a scheduled function.
type Task struct {
	scheduler *Scheduler
	due       time.Time
	interval  time.Duration
	seq       uint64
	fn        func(now time.Time)
	cancelled bool
}

// Cancel stops the task from running again. Cancelling twice is a no-op.
func (t *Task) Cancel() {
	if t == nil || t.cancelled {
		return
	}
	t.cancelled = true
	t.scheduler.remove(t)
}

// Active reports whether the task will still run.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler is not safe for concurrent use.
type Scheduler struct {
	tasks []*Task
	seq   uint64
}

func New() *Scheduler {
	return &Scheduler{}
}

// After runs fn once at now+d.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func(now time.Time)) *Task {
	return s.add(now.Add(d), 0, fn)
}

// Every runs fn at now+d and then every d after that, once per elapsed
// interval even if Advance is called late.
func (s *Scheduler) Every(now time.Time, d time.Duration, fn func(now time.Time)) *Task {
	if d <= 0 {
		panic("scheduler: non-positive interval")
	}
	return s.add(now.Add(d), d, fn)
}

func (s *Scheduler) add(due time.Time, interval time.Duration, fn func(now time.Time)) *Task {
	s.seq++
	task := &Task{
		scheduler: s,
		due:       due,
		interval:  interval,
		seq:       s.seq,
		fn:        fn,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance runs every task due at or before now, earliest first; tasks due at
// the same instant run in the order they were scheduled. A task scheduled or
// rescheduled while advancing also runs if it is already due. Each task is
// passed its own due time. Returns the number of runs.
func (s *Scheduler) Advance(now time.Time) int {
	runs := 0
	for {
		next := s.next()
		if next == nil || next.due.After(now) {
			return runs
		}
		due := next.due
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
		} else {
			next.cancelled = true
			s.remove(next)
		}
		next.fn(due)
		runs++
	}
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, task := range s.tasks {
		task.cancelled = true
	}
	s.tasks = nil
}

// Pending returns the number of tasks that will still run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

func (s *Scheduler) next() *Task {
	var next *Task
	for _, task := range s.tasks {
		if next == nil || task.due.Before(next.due) || (task.due.Equal(next.due) && task.seq < next.seq) {
			next = task
		}
	}
	return next
}

func (s *Scheduler) remove(t *Task) {
	for i, task := range s.tasks {
		if task == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
