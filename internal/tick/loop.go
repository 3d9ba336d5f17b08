package tick

import (
	"container/heap"
	"context"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// TicksPerSecond is the game simulation rate every duration is expressed against
const TicksPerSecond = 20

// SecondsToTicks converts a duration in seconds to whole ticks
func SecondsToTicks(seconds float64) int {
	return int(math.Round(seconds * TicksPerSecond))
}

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

// Scheduler is the scheduling surface effect components depend on
type Scheduler interface {
	CurrentTick() uint64
	RunTimeout(fn func(), delay int) Handle
	RunInterval(fn func(), every int) Handle
	ClearRun(h Handle)
	Pending(h Handle) bool
}

type task struct {
	handle Handle
	due    uint64
	every  uint64 // zero for one-shot tasks
	fn     func()
	index  int
}

// Loop is the single shared tick primitive. Everything except Submit and Do
// must be called from the goroutine that calls Advance.
type Loop struct {
	current atomic.Uint64
	nextID  Handle
	tasks   map[Handle]*task
	queue   taskQueue

	mu        sync.Mutex
	submitted []func()
}

// NewLoop creates a loop at tick zero
func NewLoop() *Loop {
	return &Loop{
		tasks: make(map[Handle]*task),
	}
}

// CurrentTick returns the number of ticks advanced so far
func (l *Loop) CurrentTick() uint64 {
	return l.current.Load()
}

// RunTimeout runs fn once, delay ticks from now. Delays below one run next tick.
func (l *Loop) RunTimeout(fn func(), delay int) Handle {
	if delay < 1 {
		delay = 1
	}
	return l.schedule(fn, uint64(delay), 0)
}

// RunInterval runs fn every `every` ticks until cleared
func (l *Loop) RunInterval(fn func(), every int) Handle {
	if every < 1 {
		every = 1
	}
	return l.schedule(fn, uint64(every), uint64(every))
}

func (l *Loop) schedule(fn func(), delay, every uint64) Handle {
	l.nextID++
	t := &task{
		handle: l.nextID,
		due:    l.CurrentTick() + delay,
		every:  every,
		fn:     fn,
	}
	l.tasks[t.handle] = t
	heap.Push(&l.queue, t)
	return t.handle
}

// ClearRun cancels a task. Clearing a fired or unknown handle is a no-op.
func (l *Loop) ClearRun(h Handle) {
	t, ok := l.tasks[h]
	if !ok {
		return
	}
	delete(l.tasks, h)
	heap.Remove(&l.queue, t.index)
}

// Pending reports whether the task behind h will still run
func (l *Loop) Pending(h Handle) bool {
	_, ok := l.tasks[h]
	return ok
}

// PendingCount returns the number of scheduled tasks
func (l *Loop) PendingCount() int {
	return len(l.tasks)
}

// Submit queues fn to run on the tick goroutine at the start of the next tick.
// Safe to call from any goroutine.
func (l *Loop) Submit(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submitted = append(l.submitted, fn)
}

// Do submits fn and waits for it to run or for ctx to end
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Submit(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Advance moves the loop forward one tick: submitted work first, then every
// task due on this tick in (due, handle) order. Tasks scheduled while this
// tick runs are due on a later tick.
func (l *Loop) Advance() {
	now := l.current.Add(1)

	l.mu.Lock()
	submitted := l.submitted
	l.submitted = nil
	l.mu.Unlock()

	for _, fn := range submitted {
		l.run(0, fn)
	}

	for len(l.queue) > 0 && l.queue[0].due <= now {
		next := heap.Pop(&l.queue).(*task)
		if next.every > 0 {
			next.due = now + next.every
			heap.Push(&l.queue, next)
		} else {
			delete(l.tasks, next.handle)
		}
		l.run(next.handle, next.fn)
	}
}

// AdvanceBy advances n ticks
func (l *Loop) AdvanceBy(n int) {
	for i := 0; i < n; i++ {
		l.Advance()
	}
}

// run is the top-level error boundary for a single callback
func (l *Loop) run(h Handle, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Loop: task %d panicked on tick %d: %v", h, l.CurrentTick(), r)
		}
	}()
	fn()
}

// Run drives Advance at tickRate ticks per second until ctx is done
func (l *Loop) Run(ctx context.Context, tickRate int) {
	if tickRate <= 0 {
		tickRate = TicksPerSecond
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Advance()
		}
	}
}

// taskQueue orders tasks by due tick, then by handle (registration order)
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].handle < q[j].handle
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
