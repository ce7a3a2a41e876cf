// Package fanout runs a function over a slice with a fixed pool of workers,
// keeping results in input order. Batch DOI extraction uses it so that one
// large batch occupies at most a configured number of goroutines.
package fanout

import (
	"context"
	"sync"
	"sync/atomic"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using min(maxWorkers, len(items)) goroutines
// and returns one Result per item, in input order. A maxWorkers below 1 is
// treated as 1.
//
// Workers claim items in index order. Once ctx is done, unclaimed items are
// recorded with ctx.Err() and fn is not called for them; a call already in
// progress runs to completion, so fn should honor ctx itself.
//
// An empty items slice yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))

	var next atomic.Int64
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for {
				i := int(next.Add(1) - 1)
				if i >= len(items) {
					return
				}
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: val, Err: err}
			}
		})
	}

	wg.Wait()
	return results
}
