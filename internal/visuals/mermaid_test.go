package visuals

import (
	"strings"
	"testing"

	"daylux/internal/metrics"
	"daylux/internal/portfolio"
)

func TestGenerateUDIPie(t *testing.T) {
	chart := GenerateUDIPie(metrics.Annual{UDI: 0.6, UDILow: 0.25, UDIHigh: 0.15})

	for _, want := range []string{"pie showData", "\"Useful\" : 60.0", "\"Below range\" : 25.0", "\"Above range\" : 15.0"} {
		if !strings.Contains(chart, want) {
			t.Errorf("chart missing %q:\n%s", want, chart)
		}
	}
}

func TestGenerateDAChart(t *testing.T) {
	results := []portfolio.Result{
		{Annual: metrics.Annual{DA: 0.5, CDA: 0.75}},
		{Err: metrics.ErrNoOccupiedHours},
		{Annual: metrics.Annual{DA: 1, CDA: 1}},
	}

	chart := GenerateDAChart(results)
	for _, want := range []string{"xychart-beta", "x-axis [0, 2]", "bar [50.0, 100.0]", "line [75.0, 100.0]"} {
		if !strings.Contains(chart, want) {
			t.Errorf("chart missing %q:\n%s", want, chart)
		}
	}
}

func TestGenerateDAChartEmpty(t *testing.T) {
	if got := GenerateDAChart(nil); got != "" {
		t.Errorf("GenerateDAChart(nil) = %q, want empty", got)
	}
	failed := []portfolio.Result{{Err: metrics.ErrNoOccupiedHours}}
	if got := GenerateDAChart(failed); got != "" {
		t.Errorf("GenerateDAChart(all failed) = %q, want empty", got)
	}
}
