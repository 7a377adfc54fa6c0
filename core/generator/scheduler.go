package generator

import (
	"sync"
	"time"
)

// Task is a scheduled job that can be cancelled.
type Task interface {
	Cancel()
}

// Scheduler runs engine work on the context that owns world state.
//
// Recurring and delayed jobs are dispatched back onto that single context, and
// Do lets event callbacks from other goroutines join it.
type Scheduler interface {
	// Every runs fn every interval until the returned task is cancelled.
	Every(interval time.Duration, fn func()) Task
	// After runs fn once after delay. Delayed jobs are fire-and-forget and must
	// re-check world state when they run.
	After(delay time.Duration, fn func()) Task
	// Do runs fn on the world context and waits for it to finish.
	Do(fn func())
}

// TickerScheduler is a real-time Scheduler with a single executor goroutine.
type TickerScheduler struct {
	jobs chan func()
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewTickerScheduler starts the executor goroutine.
func NewTickerScheduler() *TickerScheduler {
	s := &TickerScheduler{
		jobs: make(chan func(), 256),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TickerScheduler) run() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case fn := <-s.jobs:
			fn()
		}
	}
}

// submit queues fn for the executor; false if the scheduler is closed.
func (s *TickerScheduler) submit(fn func()) bool {
	select {
	case <-s.stop:
		return false
	case s.jobs <- fn:
		return true
	}
}

type tickerTask struct {
	once sync.Once
	quit chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.quit) })
}

// Every implements Scheduler. A tick is skipped while the previous run of fn
// is still queued or running.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{quit: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		busy := make(chan struct{}, 1)
		for {
			select {
			case <-t.quit:
				return
			case <-s.stop:
				return
			case <-ticker.C:
				select {
				case busy <- struct{}{}:
				default:
					continue
				}
				ok := s.submit(func() {
					defer func() { <-busy }()
					select {
					case <-t.quit:
						return
					default:
					}
					fn()
				})
				if !ok {
					return
				}
			}
		}
	}()
	return t
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() {
	t.timer.Stop()
}

// After implements Scheduler.
func (s *TickerScheduler) After(delay time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(delay, func() {
		s.submit(fn)
	})}
}

// Do implements Scheduler. After Close it runs fn on the caller's goroutine.
func (s *TickerScheduler) Do(fn func()) {
	finished := make(chan struct{})
	if !s.submit(func() {
		defer close(finished)
		fn()
	}) {
		fn()
		return
	}
	select {
	case <-finished:
	case <-s.done:
		// Closed while queued; the job may never run.
	}
}

// Close stops the executor. Queued jobs that have not started are dropped.
func (s *TickerScheduler) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}
