package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a requested worker count: negative means one worker per
// CPU core and zero means sequential.
func Workers(n int) int {
	switch {
	case n < 0:
		return runtime.NumCPU()
	case n == 0:
		return 1
	default:
		return n
	}
}

// Parallelize divides items into at most workers contiguous ranges
// [start, end) and runs fn on each range concurrently.
// The first error returned by fn is returned once all ranges have finished.
// With a single worker fn is called once, on the calling goroutine.
func Parallelize(items, workers int, fn func(start, end int) error) error {
	if items == 0 {
		return nil
	}

	numWorkers := Workers(workers)
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}
	if numWorkers == 1 {
		return fn(0, items)
	}

	// Ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		s, e := start, end
		g.Go(func() error {
			return fn(s, e)
		})
	}

	return g.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items does not exceed
// threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold, workers int, fn func(start, end int) error) error {
	if items <= threshold {
		return fn(0, items)
	}
	return Parallelize(items, workers, fn)
}
