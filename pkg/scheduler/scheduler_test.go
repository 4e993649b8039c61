package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_After(t *testing.T) {
	s := New()
	var ran []time.Time
	s.After(epoch, 500*time.Millisecond, func(now time.Time) {
		ran = append(ran, now)
	})

	assert.Equal(t, 0, s.Advance(epoch.Add(499*time.Millisecond)))
	assert.Empty(t, ran)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.Advance(epoch.Add(time.Second)))
	assert.Equal(t, []time.Time{epoch.Add(500 * time.Millisecond)}, ran)
	assert.Equal(t, 0, s.Pending())

	assert.Equal(t, 0, s.Advance(epoch.Add(time.Hour)))
}

func TestScheduler_order(t *testing.T) {
	s := New()
	var order []string
	s.After(epoch, 2*time.Second, func(time.Time) { order = append(order, "late") })
	s.After(epoch, time.Second, func(time.Time) { order = append(order, "first") })
	s.After(epoch, time.Second, func(time.Time) { order = append(order, "second") })

	s.Advance(epoch.Add(3 * time.Second))

	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestScheduler_Every(t *testing.T) {
	s := New()
	ticks := 0
	task := s.Every(epoch, time.Second, func(time.Time) { ticks++ })

	s.Advance(epoch.Add(999 * time.Millisecond))
	assert.Equal(t, 0, ticks)

	// a late advance catches up one run per elapsed interval
	s.Advance(epoch.Add(3500 * time.Millisecond))
	assert.Equal(t, 3, ticks)

	task.Cancel()
	s.Advance(epoch.Add(10 * time.Second))
	assert.Equal(t, 3, ticks)
	assert.False(t, task.Active())
}

func TestScheduler_Cancel(t *testing.T) {
	s := New()
	ran := false
	task := s.After(epoch, time.Second, func(time.Time) { ran = true })
	assert.True(t, task.Active())

	task.Cancel()
	task.Cancel()

	s.Advance(epoch.Add(time.Minute))
	assert.False(t, ran)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_cancelFromInsideTask(t *testing.T) {
	s := New()
	ticks := 0
	var clock *Task
	clock = s.Every(epoch, time.Second, func(time.Time) { ticks++ })
	s.After(epoch, 1500*time.Millisecond, func(time.Time) { clock.Cancel() })

	s.Advance(epoch.Add(5 * time.Second))

	assert.Equal(t, 1, ticks)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_CancelAll(t *testing.T) {
	s := New()
	ran := 0
	a := s.After(epoch, time.Second, func(time.Time) { ran++ })
	b := s.Every(epoch, time.Second, func(time.Time) { ran++ })

	s.CancelAll()
	s.Advance(epoch.Add(time.Minute))

	assert.Equal(t, 0, ran)
	assert.False(t, a.Active())
	assert.False(t, b.Active())
}

func TestScheduler_scheduleWhileAdvancing(t *testing.T) {
	s := New()
	var order []string
	s.After(epoch, time.Second, func(now time.Time) {
		order = append(order, "outer")
		s.After(now, 0, func(time.Time) { order = append(order, "inner") })
	})

	s.Advance(epoch.Add(time.Second))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
