package point

import (
	"fmt"
	"iter"
)

// CombinedValueByID sums total and direct illuminance across all sources
// for one hour, given one state id per source. A state id of -1 excludes
// that source, contributing (0, 0). A nil stateIDs vector selects state 0
// for every source.
//
// The direct sum is only meaningful while every contributing sample
// carries a direct value: when direct contributions were never loaded, or
// a contributing sample has no direct slot, the result's DirectOK is false
// and Direct keeps whatever partial sum was accumulated up to that sample.
func (s *Store) CombinedValueByID(hour float64, stateIDs []int) (Couple, error) {
	if stateIDs == nil {
		stateIDs = make([]int, len(s.names))
	}
	if len(stateIDs) != len(s.names) {
		return Couple{}, fmt.Errorf("%w: %d state ids for %d sources",
			ErrLengthMismatch, len(stateIDs), len(s.names))
	}

	c := Couple{DirectOK: s.hasDirect}
	for sid, stateID := range stateIDs {
		if stateID == -1 {
			continue
		}
		sm, err := s.sampleByID(sid, stateID, hour)
		if err != nil {
			return Couple{}, fmt.Errorf("%w: no sample for source %d state %d hour %v",
				ErrLookup, sid, stateID, hour)
		}
		if sm.hasTotal {
			c.Total += sm.total
		}
		if c.DirectOK {
			if sm.hasDirect {
				c.Direct += sm.direct
			} else {
				c.DirectOK = false
			}
		}
	}
	return c, nil
}

// CombinedValuesByID returns a lazy sequence of combined (total, direct)
// pairs in the order of hours. stateIDs must hold one state-id vector per
// hour; nil selects state 0 for every source, every hour. Nil hours
// selects the store's full hour set. The sequence is finite and can be
// restarted by ranging over it again.
func (s *Store) CombinedValuesByID(hours []float64, stateIDs [][]int) (iter.Seq2[Couple, error], error) {
	if hours == nil {
		hours = s.Hoys()
	}
	if stateIDs != nil && len(stateIDs) != len(hours) {
		return nil, fmt.Errorf("%w: %d state id rows for %d hours",
			ErrLengthMismatch, len(stateIDs), len(hours))
	}
	return func(yield func(Couple, error) bool) {
		for i, hour := range hours {
			var row []int
			if stateIDs != nil {
				row = stateIDs[i]
			}
			c, err := s.CombinedValueByID(hour, row)
			if !yield(c, err) {
				return
			}
		}
	}, nil
}

// LongestStateCombinations returns candidate state-id vectors that deepen
// in lock-step: vector i assigns min(i, stateCount-1) to each source.
// States are assumed ordered from least to most attenuating, so the
// sequence walks from every source fully open toward every source fully
// closed, clamping each source once it runs out of states.
func (s *Store) LongestStateCombinations() [][]int {
	if len(s.states) == 0 {
		return nil
	}
	depth := 0
	for _, states := range s.states {
		if len(states)-1 > depth {
			depth = len(states) - 1
		}
	}
	combs := make([][]int, depth+1)
	for i := range combs {
		row := make([]int, len(s.states))
		for sid, states := range s.states {
			row[sid] = min(i, len(states)-1)
		}
		combs[i] = row
	}
	return combs
}
