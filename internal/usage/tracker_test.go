package usage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_TrackAndStats(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track(100)
	tracker.Track(250)

	stats := tracker.Stats()
	assert.Equal(t, int64(350), stats.TotalTokensUsed)
	assert.Equal(t, int64(2), stats.TotalAPICalls)
	assert.InDelta(t, 0.00035, stats.EstimatedCost, 1e-9)
}

func TestTracker_ZeroState(t *testing.T) {
	stats := NewTracker(nil).Stats()

	assert.Equal(t, int64(0), stats.TotalTokensUsed)
	assert.Equal(t, int64(0), stats.TotalAPICalls)
	assert.Equal(t, 0.0, stats.EstimatedCost)
}

func TestTracker_NegativeTokensCountAsZero(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track(-42)

	stats := tracker.Stats()
	assert.Equal(t, int64(0), stats.TotalTokensUsed)
	assert.Equal(t, int64(1), stats.TotalAPICalls)
}

func TestTracker_ConcurrentTracking(t *testing.T) {
	tracker := NewTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Track(10)
		}()
	}
	wg.Wait()

	stats := tracker.Stats()
	assert.Equal(t, int64(500), stats.TotalTokensUsed)
	assert.Equal(t, int64(50), stats.TotalAPICalls)
}
