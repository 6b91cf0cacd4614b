package metrics

import (
	"errors"
	"math"
	"testing"

	"daylux/internal/point"
)

func storeWith(t *testing.T, values map[float64]float64) *point.Store {
	t.Helper()
	s := point.NewStore()
	for hour, v := range values {
		s.SetValue(v, hour, "", "", false)
	}
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDaylightAutonomy(t *testing.T) {
	tests := []struct {
		name      string
		values    map[float64]float64
		threshold float64
		wantDA    float64
		wantCDA   float64
	}{
		// A value exactly at the threshold counts fully toward DA.
		{"AtThreshold", map[float64]float64{1: 300}, 300, 1, 1},
		{"Above", map[float64]float64{1: 500}, 300, 1, 1},
		{"PartialCredit", map[float64]float64{1: 150}, 300, 0, 0.5},
		{"Mixed", map[float64]float64{1: 300, 2: 150, 3: 0}, 300, 1.0 / 3, 1.5 / 3},
		{"ZeroSelectsDefault", map[float64]float64{1: 300}, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReducer(storeWith(t, tt.values))
			da, cda, err := r.DaylightAutonomy(tt.threshold, nil, nil)
			if err != nil {
				t.Fatalf("DaylightAutonomy() error = %v", err)
			}
			if !approx(da, tt.wantDA) || !approx(cda, tt.wantCDA) {
				t.Errorf("DaylightAutonomy() = (%v, %v), want (%v, %v)", da, cda, tt.wantDA, tt.wantCDA)
			}
		})
	}
}

func TestUsefulDaylightIlluminance(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		wantUDI  float64
		wantLow  float64
		wantHigh float64
	}{
		// Both bounds are inclusive on the UDI side.
		{"AtLowerBound", 100, 1, 0, 0},
		{"AtUpperBound", 2000, 1, 0, 0},
		{"BelowRange", 99, 0, 1, 0},
		{"AboveRange", 2000.5, 0, 0, 1},
		{"Inside", 800, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReducer(storeWith(t, map[float64]float64{1: tt.value}))
			udi, low, high, err := r.UsefulDaylightIlluminance([2]float64{}, nil, nil)
			if err != nil {
				t.Fatalf("UsefulDaylightIlluminance() error = %v", err)
			}
			if udi != tt.wantUDI || low != tt.wantLow || high != tt.wantHigh {
				t.Errorf("UDI = (%v, %v, %v), want (%v, %v, %v)",
					udi, low, high, tt.wantUDI, tt.wantLow, tt.wantHigh)
			}
		})
	}
}

func TestScheduleFiltersByHour(t *testing.T) {
	// Hour 2 is bright but unoccupied; it must not count in either the
	// numerator or the denominator.
	s := storeWith(t, map[float64]float64{1: 500, 2: 5000, 3: 0})
	r := NewReducer(s)

	da, _, err := r.DaylightAutonomy(300, nil, ScheduleOf(1, 3))
	if err != nil {
		t.Fatalf("DaylightAutonomy() error = %v", err)
	}
	if !approx(da, 0.5) {
		t.Errorf("DA = %v, want 0.5", da)
	}
}

func TestEmptySchedule(t *testing.T) {
	r := NewReducer(storeWith(t, map[float64]float64{1: 500}))

	// Schedule hours that never occur in the store leave nothing to
	// aggregate.
	_, _, err := r.DaylightAutonomy(300, nil, ScheduleOf(99))
	if !errors.Is(err, ErrNoOccupiedHours) {
		t.Errorf("error = %v, want ErrNoOccupiedHours", err)
	}
	if !errors.Is(err, point.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation category", err)
	}
}

func TestAnnualMetrics(t *testing.T) {
	s := storeWith(t, map[float64]float64{1: 300, 2: 150, 3: 50, 4: 2500})
	r := NewReducer(s)

	a, err := r.AnnualMetrics(0, [2]float64{}, nil, nil)
	if err != nil {
		t.Fatalf("AnnualMetrics() error = %v", err)
	}

	want := Annual{
		DA:      0.5,                       // 300, 2500
		CDA:     (1 + 0.5 + 50.0/300 + 1) / 4,
		UDI:     0.5, // 300, 150
		UDILow:  0.25,
		UDIHigh: 0.25,
	}
	if !approx(a.DA, want.DA) || !approx(a.CDA, want.CDA) ||
		!approx(a.UDI, want.UDI) || !approx(a.UDILow, want.UDILow) || !approx(a.UDIHigh, want.UDIHigh) {
		t.Errorf("AnnualMetrics() = %+v, want %+v", a, want)
	}

	// The one-pass result matches the individual reducers.
	da, cda, err := r.DaylightAutonomy(0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	udi, low, high, err := r.UsefulDaylightIlluminance([2]float64{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(a.DA, da) || !approx(a.CDA, cda) || !approx(a.UDI, udi) ||
		!approx(a.UDILow, low) || !approx(a.UDIHigh, high) {
		t.Errorf("AnnualMetrics() = %+v disagrees with individual reducers", a)
	}
}

func TestAnnualMetricsWithStateMatrix(t *testing.T) {
	s := point.NewStore()
	hours := []float64{1, 2}
	if err := s.SetValues([]float64{3000, 3000}, hours, "south", "clear", false); err != nil {
		t.Fatal(err)
	}
	if err := s.SetValues([]float64{500, 500}, hours, "south", "closed", false); err != nil {
		t.Fatal(err)
	}

	// Closed for hour 1, clear for hour 2: one hour inside UDI bounds,
	// one above.
	a, err := NewReducer(s).AnnualMetrics(0, [2]float64{}, [][]int{{1}, {0}}, nil)
	if err != nil {
		t.Fatalf("AnnualMetrics() error = %v", err)
	}
	if !approx(a.UDI, 0.5) || !approx(a.UDIHigh, 0.5) {
		t.Errorf("AnnualMetrics() = %+v, want UDI 0.5 / UDIHigh 0.5", a)
	}
}
