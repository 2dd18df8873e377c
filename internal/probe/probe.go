// Package probe measures the size of many links at once with a bounded
// worker pool.
package probe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sizer reports the content length of a single URL.
type Sizer interface {
	ContentLength(ctx context.Context, url string) (int64, error)
}

// Lengths returns one size per url, in input order. A failed probe yields 0
// and never stops the rest of the batch.
func Lengths(ctx context.Context, sizer Sizer, urls []string, workers int) []int64 {
	sizes := make([]int64, len(urls))
	if len(urls) == 0 {
		return sizes
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, url := range urls {
		g.Go(func() error {
			n, err := sizer.ContentLength(ctx, url)
			if err != nil || n < 0 {
				n = 0
			}
			sizes[i] = n
			return nil
		})
	}
	_ = g.Wait()
	return sizes
}
