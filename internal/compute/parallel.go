package compute

import (
	"runtime"
	"sync"
)

// ParallelFor splits [0, n) into contiguous chunks and runs fn on each
// chunk concurrently. When n is below serialThreshold the whole range
// runs inline on the calling goroutine as a single fn(0, n) call, to
// avoid paying goroutine overhead for small domains.
func ParallelFor(n int, serialThreshold int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n < serialThreshold {
		fn(0, n)
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
