package measure

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects OnChange invocations.
type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) onChange(w int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, w)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.calls))
	copy(out, r.calls)
	return out
}

func subscriberCount(m *Manual) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

func TestObserveInitialMeasurementIsSynchronous(t *testing.T) {
	el := NewManual(800)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 50 * time.Millisecond, OnChange: rec.onChange})
	defer o.Close()

	// No sleeping: the first measurement must land before Observe returns.
	assert.Equal(t, 800, o.Width())
	assert.Equal(t, []int{800}, rec.snapshot())
}

func TestObserveCollapsesNotificationBurst(t *testing.T) {
	el := NewManual(100)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 30 * time.Millisecond, OnChange: rec.onChange})
	defer o.Close()

	for w := 200; w <= 1000; w += 100 {
		el.Set(float64(w))
	}
	time.Sleep(150 * time.Millisecond)

	require.Equal(t, 1000, o.Width())

	// One initial synchronous call plus exactly one debounced flush carrying
	// the final value of the burst.
	assert.Equal(t, []int{100, 1000}, rec.snapshot())
}

func TestObserveSeparatedNotificationsEachApply(t *testing.T) {
	el := NewManual(300)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 20 * time.Millisecond, OnChange: rec.onChange})
	defer o.Close()

	el.Set(400)
	time.Sleep(80 * time.Millisecond)
	el.Set(500)
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []int{300, 400, 500}, rec.snapshot())
	assert.Equal(t, 500, o.Width())
}

func TestObserveDisabledReportsZeroAndNeverSubscribes(t *testing.T) {
	el := NewManual(1200)
	rec := &recorder{}

	o := Observe(el, Options{Disabled: true, Debounce: 10 * time.Millisecond, OnChange: rec.onChange})
	defer o.Close()

	assert.Equal(t, 0, o.Width())
	assert.Zero(t, subscriberCount(el))

	el.Set(1400)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 0, o.Width())
	assert.Empty(t, rec.snapshot())
}

func TestSetDisabledTogglesMeasurement(t *testing.T) {
	el := NewManual(500)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 10 * time.Millisecond, OnChange: rec.onChange})
	defer o.Close()

	require.Equal(t, 500, o.Width())

	o.SetDisabled(true)
	assert.Equal(t, 0, o.Width())
	assert.Zero(t, subscriberCount(el))

	// Resizes while disabled are invisible.
	el.Set(900)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, o.Width())

	// Re-enabling measures immediately and picks up the missed resize.
	o.SetDisabled(false)
	assert.Equal(t, 900, o.Width())
	assert.Equal(t, []int{500, 0, 900}, rec.snapshot())
}

func TestCloseTearsDownAndSilences(t *testing.T) {
	el := NewManual(640)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 10 * time.Millisecond, OnChange: rec.onChange})
	require.Equal(t, 640, o.Width())

	o.Close()
	assert.Equal(t, 0, o.Width())
	assert.Zero(t, subscriberCount(el))

	el.Set(720)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []int{640}, rec.snapshot())
	assert.Equal(t, 0, o.Width())

	// Closing again is a no-op.
	o.Close()
}

func TestPendingFlushAfterCloseIsDropped(t *testing.T) {
	el := NewManual(640)
	rec := &recorder{}

	o := Observe(el, Options{Debounce: 40 * time.Millisecond, OnChange: rec.onChange})
	el.Set(900)
	o.Close()

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, []int{640}, rec.snapshot())
}

func TestWidthIsFlooredAndClamped(t *testing.T) {
	tests := []struct {
		name     string
		measured float64
		want     int
	}{
		{"fractional floors down", 799.9, 799},
		{"integral unchanged", 1024, 1024},
		{"negative clamps to zero", -5, 0},
		{"zero stays zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Observe(NewManual(tt.measured), Options{})
			defer o.Close()
			assert.Equal(t, tt.want, o.Width())
		})
	}
}

// boxless reports no border-box width but carries a content width.
type boxless struct {
	content float64
}

func (b *boxless) BoxWidth() (float64, bool) { return 0, false }
func (b *boxless) ContentWidth() float64     { return b.content }

// unmeasurable reports nothing at all.
type unmeasurable struct{}

func (unmeasurable) BoxWidth() (float64, bool) { return 0, false }

func TestContentWidthFallback(t *testing.T) {
	o := Observe(&boxless{content: 640.7}, Options{})
	defer o.Close()
	assert.Equal(t, 640, o.Width())
}

func TestUnmeasurableElementReportsZero(t *testing.T) {
	o := Observe(unmeasurable{}, Options{})
	defer o.Close()
	assert.Equal(t, 0, o.Width())
}

func TestObserveNilElement(t *testing.T) {
	o := Observe(nil, Options{})
	assert.Equal(t, 0, o.Width())
	o.Close()
}

func TestZeroDebounceFallsBackToDefault(t *testing.T) {
	o := Observe(NewManual(10), Options{})
	defer o.Close()
	assert.Equal(t, DefaultDebounce, o.deb.Duration())
}

func TestObserveContainerAlias(t *testing.T) {
	o := ObserveContainer(NewManual(320), Options{})
	defer o.Close()
	assert.Equal(t, 320, o.Width())
}

func TestManualStopUnsubscribes(t *testing.T) {
	m := NewManual(1)
	var hits int
	var mu sync.Mutex

	stop := m.OnResize(func() {
		mu.Lock()
		hits++
		mu.Unlock()
	})

	m.Set(2)
	stop()
	m.Set(3)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits)
	assert.Zero(t, subscriberCount(m))
}
