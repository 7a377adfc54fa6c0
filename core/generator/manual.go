package generator

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by the caller instead of a clock.
// Tick runs every recurring job once; Advance moves virtual time forward and
// fires the delayed jobs that became due. Everything runs on the caller's
// goroutine.
type ManualScheduler struct {
	mu        sync.Mutex
	now       time.Duration
	seq       int
	recurring []*manualTask
	delayed   []*manualTask
}

type manualTask struct {
	mu        sync.Mutex
	seq       int
	due       time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
}

func (t *manualTask) live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.cancelled
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every implements Scheduler. The interval is ignored; use Tick.
func (m *ManualScheduler) Every(_ time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{seq: m.seq, fn: fn}
	m.recurring = append(m.recurring, t)
	return t
}

// After implements Scheduler.
func (m *ManualScheduler) After(delay time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{seq: m.seq, due: m.now + delay, fn: fn}
	m.delayed = append(m.delayed, t)
	return t
}

// Do implements Scheduler by running fn immediately.
func (m *ManualScheduler) Do(fn func()) {
	fn()
}

// Tick runs every live recurring job once.
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	tasks := append([]*manualTask(nil), m.recurring...)
	m.mu.Unlock()
	for _, t := range tasks {
		if t.live() {
			t.fn()
		}
	}
}

// Advance moves virtual time forward by d and runs the delayed jobs that are
// due, in due order. It returns how many ran.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now += d
	var due, rest []*manualTask
	for _, t := range m.delayed {
		if t.due <= m.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.delayed = rest
	m.mu.Unlock()

	sort.Slice(due, func(a, b int) bool {
		if due[a].due != due[b].due {
			return due[a].due < due[b].due
		}
		return due[a].seq < due[b].seq
	})
	ran := 0
	for _, t := range due {
		if t.live() {
			t.fn()
			ran++
		}
	}
	return ran
}

// Pending returns the number of delayed jobs not yet run or cancelled.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.delayed {
		if t.live() {
			n++
		}
	}
	return n
}

// Recurring returns the number of live recurring jobs.
func (m *ManualScheduler) Recurring() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.recurring {
		if t.live() {
			n++
		}
	}
	return n
}
