package engine

import (
	"container/heap"
	"time"
)

// task is one delayed callback; seq breaks ties between equal due times
type task struct {
	due time.Time
	seq uint64
	fn  func()
}

type taskQueue []task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if !q[i].due.Equal(q[j].due) {
		return q[i].due.Before(q[j].due)
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = task{}
	*q = old[:n-1]
	return t
}

// Scheduler is a single-goroutine delayed task queue
// Tasks run from RunDue on the caller's goroutine, ordered by due time then by
// insertion; there is no cancellation handle, callbacks check their own staleness
type Scheduler struct {
	clock TimeProvider
	queue taskQueue
	seq   uint64
}

// NewScheduler creates a scheduler reading due times from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// After queues fn to run once d has elapsed on the scheduler clock
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.seq++
	heap.Push(&s.queue, task{due: s.clock.Now().Add(d), seq: s.seq, fn: fn})
}

// RunDue runs every task due at or before now, including tasks queued by those
// tasks that are already due, and returns how many ran
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(task)
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Next returns the earliest due time, ok is false when the queue is empty
func (s *Scheduler) Next() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}
