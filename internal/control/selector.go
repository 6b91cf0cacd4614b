// Package control picks, per hour of the year, the state combination of a
// point's window groups that satisfies a shading control policy.
package control

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"daylux/internal/point"
)

// Policy decides whether a candidate combination is still unacceptable for
// an hour. While it returns true the search advances to the next (more
// attenuating) candidate; the first candidate for which it returns false
// is accepted.
type Policy func(sample point.Couple, hour float64) bool

// DefaultPolicy keeps closing blinds while total illuminance exceeds
// 2000 lux.
func DefaultPolicy(sample point.Couple, _ float64) bool {
	return sample.Total > 2000
}

// Selection flags, one per hour.
const (
	// FlagChanged marks hours where a deeper state was needed to satisfy
	// the policy.
	FlagChanged = 1
	// FlagDefault marks hours where the shallowest candidate already
	// satisfied the policy.
	FlagDefault = 0
	// FlagUnsatisfied marks hours where no candidate satisfied the policy;
	// the last candidate's values are reported as the degraded fallback.
	FlagUnsatisfied = -1
)

// Trace is the outcome of a selection run: parallel per-hour slices of the
// winning combination, its candidate index, its combined values and the
// selection flag.
type Trace struct {
	Hours        []float64
	Combinations [][]int
	Indices      []int
	Values       []point.Couple
	Flags        []int
}

// Selector walks candidate state combinations from least to most
// attenuating under an injected policy. It only reads the store.
type Selector struct {
	store  *point.Store
	policy Policy
}

// NewSelector creates a selector for the store. A nil policy selects
// DefaultPolicy.
func NewSelector(store *point.Store, policy Policy) *Selector {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &Selector{store: store, policy: policy}
}

// Select runs the selection over hours (nil for the store's full hour set)
// against candidate combinations ordered shallow to deep (nil for the
// store's longest state combinations). Each combination must hold one
// state id per source; -1 excludes a source.
func (sel *Selector) Select(hours []float64, combinations [][]int) (*Trace, error) {
	if hours == nil {
		hours = sel.store.Hoys()
	}
	if combinations == nil {
		combinations = sel.store.LongestStateCombinations()
	}
	if len(combinations) == 0 {
		return nil, fmt.Errorf("%w: no candidate combinations", point.ErrValidation)
	}
	log.Debug().Int("hours", len(hours)).Int("candidates", len(combinations)).
		Msg("Running blinds state selection")

	// Combined values for every candidate across all hours, evaluated up
	// front so the per-hour walk is a pure comparison.
	values := make([][]point.Couple, len(combinations))
	for ci, comb := range combinations {
		row := make([]point.Couple, len(hours))
		for hi, hour := range hours {
			c, err := sel.store.CombinedValueByID(hour, comb)
			if err != nil {
				return nil, err
			}
			row[hi] = c
		}
		values[ci] = row
	}

	tr := &Trace{
		Hours:        slices.Clone(hours),
		Combinations: make([][]int, len(hours)),
		Indices:      make([]int, len(hours)),
		Values:       make([]point.Couple, len(hours)),
		Flags:        make([]int, len(hours)),
	}
	last := len(combinations) - 1
	for hi, hour := range hours {
		chosen := -1
		for ci := range combinations {
			if !sel.policy(values[ci][hi], hour) {
				chosen = ci
				break
			}
		}
		if chosen < 0 {
			// No candidate is good enough; report the deepest one.
			tr.Indices[hi] = last
			tr.Combinations[hi] = combinations[last]
			tr.Values[hi] = values[last][hi]
			tr.Flags[hi] = FlagUnsatisfied
			continue
		}
		tr.Indices[hi] = chosen
		tr.Combinations[hi] = combinations[chosen]
		tr.Values[hi] = values[chosen][hi]
		if chosen > 0 {
			tr.Flags[hi] = FlagChanged
		}
	}
	return tr, nil
}

// SelectNamed is Select with candidates given as comma-separated state
// names, one name per source in source-id order ("clear, down_50"). Names
// resolve through the store; numeric entries pass through as raw ids.
func (sel *Selector) SelectNamed(hours []float64, combinations []string) (*Trace, error) {
	sources := sel.store.Sources()
	ids := make([][]int, len(combinations))
	for i, comb := range combinations {
		parts := strings.Split(comb, ",")
		if len(parts) != len(sources) {
			return nil, fmt.Errorf("%w: combination %q has %d states for %d sources",
				point.ErrValidation, comb, len(parts), len(sources))
		}
		row := make([]int, len(parts))
		for j, part := range parts {
			id, err := sel.store.StateID(sources[j], strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			row[j] = id
		}
		ids[i] = row
	}
	return sel.Select(hours, ids)
}
