package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBurstCollapsesToLastCallback(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls atomic.Int64
	var last atomic.Int64

	for i := 1; i <= 10; i++ {
		n := int64(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int64(1), calls.Load(), "a burst within one window runs exactly one callback")
	assert.Equal(t, int64(10), last.Load(), "the surviving callback is the last one triggered")
}

func TestSeparatedTriggersEachFire(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls atomic.Int64
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(80 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int64(2), calls.Load())
}

func TestCancelDropsPendingCallback(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls atomic.Int64
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(120 * time.Millisecond)

	assert.Equal(t, int64(0), calls.Load(), "no callback may fire after Cancel")
	assert.False(t, d.Pending())
}

func TestPendingReflectsState(t *testing.T) {
	d := New(40 * time.Millisecond)

	assert.False(t, d.Pending())
	d.Trigger(func() {})
	assert.True(t, d.Pending())

	time.Sleep(160 * time.Millisecond)
	assert.False(t, d.Pending())
}

func TestZeroDurationFallsBackToDefault(t *testing.T) {
	d := New(0)

	assert.Equal(t, DefaultDuration, d.Duration())
}
