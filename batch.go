package surface

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMin is the smallest batch that gets split across goroutines.
const parallelMin = 2048

// forRange calls fn on consecutive chunks of [0, n). Chunks run
// concurrently for large batches and must only touch their own indices.
func forRange(n int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < parallelMin || workers == 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	// There are at most workers chunks, so the group needs no limit.
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// fn can't fail.
	_ = g.Wait()
}
