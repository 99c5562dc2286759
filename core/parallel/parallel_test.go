package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), Workers(-1))
	assert.Equal(t, 1, Workers(0))
	assert.Equal(t, 4, Workers(4))
}

func TestParallelizeCoversEveryItemOnce(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		workers int
	}{
		{name: "sequential", items: 10, workers: 1},
		{name: "even split", items: 12, workers: 4},
		{name: "uneven split", items: 13, workers: 4},
		{name: "more workers than items", items: 3, workers: 8},
		{name: "all cpus", items: 50, workers: -1},
		{name: "no items", items: 0, workers: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.items)
			err := Parallelize(tt.items, tt.workers, func(start, end int) error {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
				return nil
			})
			require.NoError(t, err)
			for i, n := range seen {
				assert.Equal(t, int32(1), n, "item %d", i)
			}
		})
	}
}

func TestParallelizeReturnsError(t *testing.T) {
	boom := errors.New("boom")
	err := Parallelize(20, 4, func(start, end int) error {
		if start <= 7 && 7 < end {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestParallelizeWithThreshold(t *testing.T) {
	var mu sync.Mutex
	var calls [][2]int
	record := func(start, end int) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, [2]int{start, end})
		return nil
	}

	require.NoError(t, ParallelizeWithThreshold(5, 10, 4, record))
	assert.Equal(t, [][2]int{{0, 5}}, calls)

	calls = nil
	require.NoError(t, ParallelizeWithThreshold(20, 10, 4, record))
	assert.Len(t, calls, 4)
}
