package generator_test

import (
	"sync/atomic"
	"testing"
	"time"

	"blocks-generator/core/generator"

	"github.com/stretchr/testify/assert"
)

func TestTickerScheduler(t *testing.T) {
	t.Run("DoRunsOnExecutor", func(t *testing.T) {
		s := generator.NewTickerScheduler()
		defer s.Close()

		var n int
		for range 10 {
			s.Do(func() { n++ })
		}
		assert.Equal(t, 10, n)
	})

	t.Run("EveryUntilCancelled", func(t *testing.T) {
		s := generator.NewTickerScheduler()
		defer s.Close()

		var n atomic.Int32
		task := s.Every(5*time.Millisecond, func() { n.Add(1) })
		assert.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

		task.Cancel()
		s.Do(func() {})
		stopped := n.Load()
		time.Sleep(30 * time.Millisecond)
		assert.LessOrEqual(t, n.Load(), stopped+1)
	})

	t.Run("AfterFiresOnce", func(t *testing.T) {
		s := generator.NewTickerScheduler()
		defer s.Close()

		var n atomic.Int32
		s.After(5*time.Millisecond, func() { n.Add(1) })
		assert.Eventually(t, func() bool { return n.Load() == 1 }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, int32(1), n.Load())
	})

	t.Run("AfterCancelled", func(t *testing.T) {
		s := generator.NewTickerScheduler()
		defer s.Close()

		var n atomic.Int32
		task := s.After(20*time.Millisecond, func() { n.Add(1) })
		task.Cancel()
		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, int32(0), n.Load())
	})

	t.Run("DoAfterClose", func(t *testing.T) {
		s := generator.NewTickerScheduler()
		s.Close()
		s.Close()

		ran := false
		s.Do(func() { ran = true })
		assert.True(t, ran)
	})
}

func TestManualScheduler(t *testing.T) {
	t.Run("AdvanceRunsDueJobsInOrder", func(t *testing.T) {
		s := generator.NewManualScheduler()
		var order []string
		s.After(30*time.Millisecond, func() { order = append(order, "late") })
		s.After(10*time.Millisecond, func() { order = append(order, "early") })
		s.After(10*time.Millisecond, func() { order = append(order, "early-2") })

		assert.Equal(t, 0, s.Advance(5*time.Millisecond))
		assert.Equal(t, 2, s.Advance(5*time.Millisecond))
		assert.Equal(t, 1, s.Pending())
		assert.Equal(t, 1, s.Advance(time.Second))
		assert.Equal(t, []string{"early", "early-2", "late"}, order)
	})

	t.Run("CancelledJobsDoNotRun", func(t *testing.T) {
		s := generator.NewManualScheduler()
		ran := 0
		s.After(time.Millisecond, func() { ran++ }).Cancel()
		rec := s.Every(time.Millisecond, func() { ran++ })

		s.Tick()
		assert.Equal(t, 1, ran)
		rec.Cancel()
		s.Tick()
		assert.Equal(t, 0, s.Advance(time.Second))
		assert.Equal(t, 1, ran)
		assert.Equal(t, 0, s.Recurring())
	})
}
