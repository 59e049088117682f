// Package workerpool provides a generic bounded worker pool for running
// a function over a slice of items concurrently.
package workerpool

import (
	"context"
	"sync"
)

// Run executes fn for each item in items using up to workers goroutines.
// It returns the first non-nil error from fn, or nil if all succeed.
// All in-flight goroutines are allowed to finish even if one returns an error.
func Run[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	var once sync.Once
	var firstErr error

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(it T) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if err := fn(ctx, it); err != nil {
				once.Do(func() { firstErr = err })
			}
		}(item)
	}

	wg.Wait()
	return firstErr
}

// Result is the outcome of one item processed by Map.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Map runs fn for each item like Run, but keeps going past failures and
// returns one Result per item in input order. Items skipped because ctx was
// cancelled before they started carry ctx.Err().
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	for i, it := range items {
		results[i] = Result[T, R]{Item: it}
	}

	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}
	started := make([]bool, len(items))

	_ = Run(ctx, indexes, workers, func(ctx context.Context, i int) error {
		started[i] = true
		results[i].Value, results[i].Err = fn(ctx, items[i])
		return nil
	})

	for i := range results {
		if !started[i] {
			results[i].Err = ctx.Err()
		}
	}
	return results
}
