package point

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name      string
		location  []float64
		direction []float64
		wantErr   bool
	}{
		{"Valid", []float64{0, 0, 0.76}, []float64{0, 0, 1}, false},
		{"Negative", []float64{-1.5, 2, 0}, []float64{0, -1, 0}, false},
		{"ShortLocation", []float64{0, 0}, []float64{0, 0, 1}, true},
		{"LongDirection", []float64{0, 0, 0}, []float64{0, 0, 1, 0}, true},
		{"NaNLocation", []float64{math.NaN(), 0, 0}, []float64{0, 0, 1}, true},
		{"InfDirection", []float64{0, 0, 0}, []float64{0, 0, math.Inf(1)}, true},
		{"NilLocation", nil, []float64{0, 0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoint(tt.location, tt.direction)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPoint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("NewPoint() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestPointString(t *testing.T) {
	p := NewPointFromRaw(0, 1.5, 0.76, 0, 0, 1)
	want := "0 1.5 0.76 0 0 1"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
