package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClock_StartsAtEpoch(t *testing.T) {
	clock := NewDeterministicClock(time.Time{}, time.Second)
	assert.Equal(t, Epoch, clock.Now())
	assert.Equal(t, 1, clock.Calls())
}

func TestDeterministicClock_Advances(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewDeterministicClock(start, time.Minute)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(time.Minute), clock.Now())
	assert.Equal(t, start.Add(2*time.Minute), clock.Now())
}

func TestDeterministicClock_Reset(t *testing.T) {
	clock := NewDeterministicClock(time.Time{}, time.Second)
	clock.Now()
	clock.Now()

	clock.Reset()
	assert.Equal(t, 0, clock.Calls())
	assert.Equal(t, Epoch, clock.Now())
}

func TestDeterministicClock_ConcurrentReadsAreDistinct(t *testing.T) {
	clock := NewDeterministicClock(time.Time{}, time.Second)

	const n = 100
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[time.Time]bool)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			now := clock.Now()
			mu.Lock()
			seen[now] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestFixedClock(t *testing.T) {
	now := FixedClock(Epoch)
	assert.Equal(t, Epoch, now())
	assert.Equal(t, Epoch, now())
}
