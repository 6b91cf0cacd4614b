package portfolio

import (
	"context"
	"errors"
	"testing"

	"daylux/internal/metrics"
	"daylux/internal/point"
)

func itemWith(t *testing.T, values map[float64]float64) Item {
	t.Helper()
	s := point.NewStore()
	for hour, v := range values {
		s.SetValue(v, hour, "", "", false)
	}
	return Item{Point: point.NewPointFromRaw(0, 0, 0.76, 0, 0, 1), Store: s}
}

func TestAnnualMetrics(t *testing.T) {
	items := []Item{
		itemWith(t, map[float64]float64{1: 500, 2: 100}),
		itemWith(t, map[float64]float64{1: 3000, 2: 3000}),
	}

	results, err := AnnualMetrics(context.Background(), items, Options{Workers: 1})
	if err != nil {
		t.Fatalf("AnnualMetrics() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Fatalf("unexpected point errors: %v, %v", results[0].Err, results[1].Err)
	}
	if results[0].Annual.DA != 0.5 {
		t.Errorf("point 0 DA = %v, want 0.5", results[0].Annual.DA)
	}
	if results[1].Annual.DA != 1 {
		t.Errorf("point 1 DA = %v, want 1", results[1].Annual.DA)
	}
}

func TestAnnualMetricsIsolatesFailures(t *testing.T) {
	items := []Item{
		itemWith(t, map[float64]float64{1: 500}),
		itemWith(t, map[float64]float64{1: 500}),
	}

	// A schedule with no overlap fails the reduction for both points, but
	// the run itself still completes and reports per-point errors.
	results, err := AnnualMetrics(context.Background(), items, Options{
		Schedule: metrics.ScheduleOf(99),
	})
	if err != nil {
		t.Fatalf("AnnualMetrics() error = %v", err)
	}
	for i, r := range results {
		if !errors.Is(r.Err, metrics.ErrNoOccupiedHours) {
			t.Errorf("result %d Err = %v, want ErrNoOccupiedHours", i, r.Err)
		}
	}
}

func TestAnnualMetricsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []Item{itemWith(t, map[float64]float64{1: 500})}
	if _, err := AnnualMetrics(ctx, items, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("AnnualMetrics() error = %v, want context.Canceled", err)
	}
}
