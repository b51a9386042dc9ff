package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelFor runs body(threadIdx) once for each threadIdx in [0, n),
// using an errgroup capped at n concurrent goroutines, and blocks until
// every invocation has returned. body never returns an error, so the
// group itself cannot fail.
func ParallelFor(n int, body func(threadIdx int)) {
	if n <= 1 {
		if n == 1 {
			body(0)
		}
		return
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(n)
	for i := 0; i < n; i++ {
		idx := i
		g.Go(func() error {
			body(idx)
			return nil
		})
	}
	_ = g.Wait()
}

// ForEachRowBand splits [0, height) into contiguous row bands, one per
// worker implied by policy, and runs body(y0, y1) for each band
// concurrently. Bands are disjoint and cover [0, height) exactly once,
// so a worker that owns [y0, y1) never aliases another worker's writes.
func ForEachRowBand(width, height int, policy ThreadingPolicy, body func(y0, y1 int)) {
	workers := policy.ResolveWorkers(width, height)
	if workers <= 1 {
		body(0, height)
		return
	}
	bandHeight := (height + workers - 1) / workers
	type band struct{ y0, y1 int }
	bands := make([]band, 0, workers)
	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := y0 + bandHeight
		if y1 > height {
			y1 = height
		}
		bands = append(bands, band{y0, y1})
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(len(bands))
	for _, b := range bands {
		b := b
		g.Go(func() error {
			body(b.y0, b.y1)
			return nil
		})
	}
	_ = g.Wait()
}
