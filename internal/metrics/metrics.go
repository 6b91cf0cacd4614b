// Package metrics folds a point's combined illuminance series into annual
// daylighting metrics: daylight autonomy, continuous daylight autonomy and
// useful daylight illuminance.
//
// The occupancy schedule filters by hour of the year. The original
// implementation this derives from checked the illuminance value against
// the schedule set, which only worked when schedules happened to coincide
// with hour sets; that is treated as a defect here and the documented
// intent (hour membership) is implemented instead.
package metrics

import (
	"fmt"

	"daylux/internal/point"
)

// Metric defaults, selected when the corresponding argument is zero.
const (
	DefaultDAThreshold = 300.0
	DefaultUDIMin      = 100.0
	DefaultUDIMax      = 2000.0
)

// ErrNoOccupiedHours is returned when the schedule leaves no hour to
// aggregate over, which would otherwise divide by zero.
var ErrNoOccupiedHours = fmt.Errorf("%w: schedule leaves no occupied hours", point.ErrValidation)

// Schedule is the set of occupied hours of the year. A nil Schedule treats
// every hour in the store as occupied.
type Schedule map[float64]bool

// ScheduleOf builds a schedule from a list of occupied hours.
func ScheduleOf(hours ...float64) Schedule {
	s := make(Schedule, len(hours))
	for _, h := range hours {
		s[h] = true
	}
	return s
}

// Annual holds the annual daylighting metrics as fractions of occupied
// hours.
type Annual struct {
	DA      float64 `json:"da"`
	CDA     float64 `json:"cda"`
	UDI     float64 `json:"udi"`
	UDILow  float64 `json:"udi_low"`
	UDIHigh float64 `json:"udi_high"`
}

// Reducer computes annual metrics over one point's result store,
// optionally filtered through a per-hour state combination.
type Reducer struct {
	store *point.Store
}

// NewReducer creates a reducer over the store.
func NewReducer(store *point.Store) *Reducer {
	return &Reducer{store: store}
}

// reduce makes one pass over the combined series and accumulates every
// metric counter. stateIDs holds one state-id vector per hour, or nil for
// state 0 everywhere.
func (r *Reducer) reduce(threshold float64, bounds [2]float64, stateIDs [][]int, schedule Schedule) (Annual, error) {
	if threshold == 0 {
		threshold = DefaultDAThreshold
	}
	if bounds == ([2]float64{}) {
		bounds = [2]float64{DefaultUDIMin, DefaultUDIMax}
	}

	hours := r.store.Hoys()
	seq, err := r.store.CombinedValuesByID(hours, stateIDs)
	if err != nil {
		return Annual{}, err
	}

	var a Annual
	occupied := 0
	i := 0
	for c, err := range seq {
		if err != nil {
			return Annual{}, err
		}
		hour := hours[i]
		i++
		if schedule != nil && !schedule[hour] {
			continue
		}
		occupied++

		v := c.Total
		if v >= threshold {
			a.DA++
			a.CDA++
		} else {
			a.CDA += v / threshold
		}
		switch {
		case v < bounds[0]:
			a.UDILow++
		case v > bounds[1]:
			a.UDIHigh++
		default:
			a.UDI++
		}
	}

	if occupied == 0 {
		return Annual{}, ErrNoOccupiedHours
	}
	n := float64(occupied)
	a.DA /= n
	a.CDA /= n
	a.UDI /= n
	a.UDILow /= n
	a.UDIHigh /= n
	return a, nil
}

// DaylightAutonomy returns the daylight autonomy and continuous daylight
// autonomy for the threshold in lux (0 for the 300 lx default). Hours at
// or above the threshold count fully toward both; hours below contribute
// value/threshold to CDA only.
func (r *Reducer) DaylightAutonomy(threshold float64, stateIDs [][]int, schedule Schedule) (da, cda float64, err error) {
	a, err := r.reduce(threshold, [2]float64{}, stateIDs, schedule)
	if err != nil {
		return 0, 0, err
	}
	return a.DA, a.CDA, nil
}

// UsefulDaylightIlluminance returns the fractions of occupied hours below,
// inside and above the bounds (zero bounds for the 100-2000 lx default).
// Values equal to either bound count as useful.
func (r *Reducer) UsefulDaylightIlluminance(bounds [2]float64, stateIDs [][]int, schedule Schedule) (udi, low, high float64, err error) {
	a, err := r.reduce(0, bounds, stateIDs, schedule)
	if err != nil {
		return 0, 0, 0, err
	}
	return a.UDI, a.UDILow, a.UDIHigh, nil
}

// AnnualMetrics computes every annual metric in one pass over the same
// filtered series.
func (r *Reducer) AnnualMetrics(threshold float64, bounds [2]float64, stateIDs [][]int, schedule Schedule) (Annual, error) {
	return r.reduce(threshold, bounds, stateIDs, schedule)
}
