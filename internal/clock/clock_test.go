package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var start = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestManual_AdvanceFiresDueTimers(t *testing.T) {
	m := NewManual(start)

	var fired []string
	m.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	m.AfterFunc(3*time.Second, func() { fired = append(fired, "b") })

	m.Advance(time.Second)
	assert.Equal(t, []string{"a"}, fired)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a"}, fired)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(3*time.Second), m.Now())
}

func TestManual_StopPreventsFiring(t *testing.T) {
	m := NewManual(start)

	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	m.Advance(time.Minute)
	assert.False(t, fired)

	// Stopping again reports that it no longer prevented anything.
	assert.False(t, timer.Stop())
}

func TestManual_TimerFiresOnlyOnce(t *testing.T) {
	m := NewManual(start)

	count := 0
	m.AfterFunc(time.Second, func() { count++ })

	m.Advance(time.Second)
	m.Advance(time.Minute)
	assert.Equal(t, 1, count)
}
