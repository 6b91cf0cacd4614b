// Package portfolio runs annual metrics across many analysis points. Each
// point owns an independent store, which makes distinct points the only
// safe parallelism axis: a store is never shared between goroutines.
package portfolio

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"daylux/internal/metrics"
	"daylux/internal/point"
)

// Item pairs an analysis point with its result store.
type Item struct {
	Point point.Point
	Store *point.Store
}

// Options bounds a portfolio run.
type Options struct {
	Workers   int // 0 for NumCPU
	Threshold float64
	Bounds    [2]float64
	Schedule  metrics.Schedule
}

// Result is the outcome for one point. A failed point carries its error
// here instead of aborting the rest of the portfolio.
type Result struct {
	Point  point.Point
	Annual metrics.Annual
	Err    error
}

// AnnualMetrics computes annual metrics for every item concurrently.
// Results are returned in item order. The only returned error is a
// cancelled context; per-point failures land in Result.Err.
func AnnualMetrics(ctx context.Context, items []Item, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]Result, len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := metrics.NewReducer(item.Store).
				AnnualMetrics(opts.Threshold, opts.Bounds, nil, opts.Schedule)
			results[i] = Result{Point: item.Point, Annual: a, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
