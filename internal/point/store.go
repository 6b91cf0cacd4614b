package point

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Couple is a total/direct illuminance pair for one hour. Direct
// contributions are optional in many recipes; Direct carries a meaningful
// value only when DirectOK is true. When DirectOK is false, Direct holds
// whatever partial sum was accumulated before the first missing direct
// sample (zero for plain reads).
type Couple struct {
	Total    float64 `json:"total"`
	Direct   float64 `json:"direct"`
	DirectOK bool    `json:"direct_ok"`
}

// sample is one stored (total, direct) slot pair. A slot reads as zero
// until its flag is set.
type sample struct {
	total     float64
	direct    float64
	hasTotal  bool
	hasDirect bool
}

type series map[float64]sample

// Store holds the (source, state, hour) -> (total, direct) table for one
// analysis point. Sources and states are registered implicitly on first
// write and acquire dense integer ids in insertion order; ids are never
// reassigned. The single unnamed source is the empty string.
//
// A Store is not safe for concurrent mutation. Writes must be serialized
// by the caller; reads may run concurrently with each other but never with
// a write.
type Store struct {
	names     []string   // source names, dense by source id
	states    [][]string // state names per source, insertion order
	values    [][]series // values[sourceID][stateID] -> hour series
	ids       map[string]int
	hasDirect bool
}

// NewStore creates an empty result store.
func NewStore() *Store {
	return &Store{ids: make(map[string]int)}
}

// ensure registers source and state on first use and returns their ids.
func (s *Store) ensure(source, state string) (int, int) {
	sid, ok := s.ids[source]
	if !ok {
		sid = len(s.names)
		s.ids[source] = sid
		s.names = append(s.names, source)
		s.states = append(s.states, nil)
		s.values = append(s.values, nil)
	}
	stateID := slices.Index(s.states[sid], state)
	if stateID < 0 {
		stateID = len(s.states[sid])
		s.states[sid] = append(s.states[sid], state)
		s.values[sid] = append(s.values[sid], make(series))
	}
	return sid, stateID
}

// SetValue writes a single illuminance value for one hour of the year,
// into the direct slot when direct is true, the total slot otherwise.
// Writing the same hour again overwrites the slot.
func (s *Store) SetValue(value, hour float64, source, state string, direct bool) {
	sid, stateID := s.ensure(source, state)
	sm := s.values[sid][stateID][hour]
	if direct {
		sm.direct, sm.hasDirect = value, true
		s.hasDirect = true
	} else {
		sm.total, sm.hasTotal = value, true
	}
	s.values[sid][stateID][hour] = sm
}

// SetValues writes one value per hour. The two slices must have the same
// length.
func (s *Store) SetValues(values, hours []float64, source, state string, direct bool) error {
	if len(values) != len(hours) {
		return fmt.Errorf("%w: %d values for %d hours", ErrLengthMismatch, len(values), len(hours))
	}
	for i, hour := range hours {
		s.SetValue(values[i], hour, source, state, direct)
	}
	return nil
}

// SetValuesSeq writes lazily produced (hour, value) pairs. The pairs are
// consumed as yielded with no length check; producing mismatched streams
// is the caller's responsibility.
func (s *Store) SetValuesSeq(pairs iter.Seq2[float64, float64], source, state string, direct bool) {
	for hour, value := range pairs {
		s.SetValue(value, hour, source, state, direct)
	}
}

// SetCoupledValue writes total and direct together for one hour. The value
// must hold exactly two elements, (total, direct). Coupled writes always
// mark direct contributions as loaded.
func (s *Store) SetCoupledValue(value []float64, hour float64, source, state string) error {
	if len(value) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrBadCouple, len(value))
	}
	sid, stateID := s.ensure(source, state)
	s.values[sid][stateID][hour] = sample{
		total: value[0], direct: value[1],
		hasTotal: true, hasDirect: true,
	}
	s.hasDirect = true
	return nil
}

// SetCoupledValues writes (total, direct) pairs for several hours.
func (s *Store) SetCoupledValues(values [][]float64, hours []float64, source, state string) error {
	if len(values) != len(hours) {
		return fmt.Errorf("%w: %d values for %d hours", ErrLengthMismatch, len(values), len(hours))
	}
	for i, hour := range hours {
		if err := s.SetCoupledValue(values[i], hour, source, state); err != nil {
			return err
		}
	}
	return nil
}

// SetCoupledValuesSeq writes lazily produced (hour, pair) couples with no
// length check, in the same contract as SetValuesSeq.
func (s *Store) SetCoupledValuesSeq(pairs iter.Seq2[float64, []float64], source, state string) error {
	for hour, value := range pairs {
		if err := s.SetCoupledValue(value, hour, source, state); err != nil {
			return err
		}
	}
	return nil
}

// SourceID resolves a source name to its dense integer id.
func (s *Store) SourceID(source string) (int, error) {
	sid, ok := s.ids[source]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return sid, nil
}

// StateID resolves a state identifier for a source. A numeric string is
// used verbatim as the index with no range check against the source's
// state list; an out-of-range numeric id only fails later at sample
// lookup. Named states resolve by list membership.
func (s *Store) StateID(source, state string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(state)); err == nil {
		return id, nil
	}
	sid, err := s.SourceID(source)
	if err != nil {
		return 0, err
	}
	if i := slices.Index(s.states[sid], state); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, state)
}

func (s *Store) resolve(source, state string) (int, int, error) {
	sid, err := s.SourceID(source)
	if err != nil {
		return 0, 0, err
	}
	stateID, err := s.StateID(source, state)
	if err != nil {
		return 0, 0, err
	}
	return sid, stateID, nil
}

// sampleByID fetches one stored sample by raw ids.
func (s *Store) sampleByID(sourceID, stateID int, hour float64) (sample, error) {
	if sourceID < 0 || sourceID >= len(s.values) {
		return sample{}, fmt.Errorf("%w: id %d", ErrUnknownSource, sourceID)
	}
	if stateID < 0 || stateID >= len(s.values[sourceID]) {
		return sample{}, fmt.Errorf("%w: id %d", ErrUnknownState, stateID)
	}
	sm, ok := s.values[sourceID][stateID][hour]
	if !ok {
		return sample{}, fmt.Errorf("%w: %v", ErrInvalidHour, hour)
	}
	return sm, nil
}

// Value returns the total illuminance for one hour of the year.
func (s *Store) Value(hour float64, source, state string) (float64, error) {
	sid, stateID, err := s.resolve(source, state)
	if err != nil {
		return 0, err
	}
	sm, err := s.sampleByID(sid, stateID, hour)
	if err != nil {
		return 0, err
	}
	return sm.total, nil
}

// DirectValue returns the direct illuminance for one hour of the year.
// The slot reads as zero when direct contributions were never loaded.
func (s *Store) DirectValue(hour float64, source, state string) (float64, error) {
	sid, stateID, err := s.resolve(source, state)
	if err != nil {
		return 0, err
	}
	sm, err := s.sampleByID(sid, stateID, hour)
	if err != nil {
		return 0, err
	}
	return sm.direct, nil
}

// Values returns total illuminance for several hours of the year.
func (s *Store) Values(hours []float64, source, state string) ([]float64, error) {
	sid, stateID, err := s.resolve(source, state)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(hours))
	for i, hour := range hours {
		sm, err := s.sampleByID(sid, stateID, hour)
		if err != nil {
			return nil, err
		}
		out[i] = sm.total
	}
	return out, nil
}

// DirectValues returns direct illuminance for several hours of the year.
func (s *Store) DirectValues(hours []float64, source, state string) ([]float64, error) {
	sid, stateID, err := s.resolve(source, state)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(hours))
	for i, hour := range hours {
		sm, err := s.sampleByID(sid, stateID, hour)
		if err != nil {
			return nil, err
		}
		out[i] = sm.direct
	}
	return out, nil
}

// CoupledValue returns the (total, direct) pair for one hour of the year.
func (s *Store) CoupledValue(hour float64, source, state string) (Couple, error) {
	sid, stateID, err := s.resolve(source, state)
	if err != nil {
		return Couple{}, err
	}
	sm, err := s.sampleByID(sid, stateID, hour)
	if err != nil {
		return Couple{}, err
	}
	return Couple{Total: sm.total, Direct: sm.direct, DirectOK: sm.hasDirect}, nil
}

// CoupledValues returns (total, direct) pairs for several hours of the year.
func (s *Store) CoupledValues(hours []float64, source, state string) ([]Couple, error) {
	out := make([]Couple, len(hours))
	for i, hour := range hours {
		c, err := s.CoupledValue(hour, source, state)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// CoupledValueByID returns the (total, direct) pair addressed by raw
// integer ids. Id 0 addresses the implicit source and its first state. Any
// resolution failure is reported as one uniform lookup error.
func (s *Store) CoupledValueByID(hour float64, sourceID, stateID int) (Couple, error) {
	sm, err := s.sampleByID(sourceID, stateID, hour)
	if err != nil {
		return Couple{}, fmt.Errorf("%w: no sample for source %d state %d hour %v",
			ErrLookup, sourceID, stateID, hour)
	}
	return Couple{Total: sm.total, Direct: sm.direct, DirectOK: sm.hasDirect}, nil
}

// CoupledValuesByID returns (total, direct) pairs for several hours,
// addressed by raw integer ids.
func (s *Store) CoupledValuesByID(hours []float64, sourceID, stateID int) ([]Couple, error) {
	out := make([]Couple, len(hours))
	for i, hour := range hours {
		c, err := s.CoupledValueByID(hour, sourceID, stateID)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// HasValues reports whether any sample has been written.
func (s *Store) HasValues() bool {
	return len(s.values) != 0
}

// HasDirect reports whether direct contributions were ever loaded. Once
// true it stays true for the lifetime of the store.
func (s *Store) HasDirect() bool {
	return s.hasDirect
}

// Hoys returns the sorted hours of the year with data, defined as the hour
// set of the first registered source's first state. All other series are
// expected to share it, although that is not structurally enforced.
func (s *Store) Hoys() []float64 {
	if !s.HasValues() {
		return nil
	}
	first := s.values[0][0]
	hours := make([]float64, 0, len(first))
	for hour := range first {
		hours = append(hours, hour)
	}
	slices.Sort(hours)
	return hours
}

// Sources returns source names ordered by id.
func (s *Store) Sources() []string {
	return slices.Clone(s.names)
}

// States returns the state names of every source, ordered by source id and
// state id.
func (s *Store) States() [][]string {
	out := make([][]string, len(s.states))
	for i, st := range s.states {
		out[i] = slices.Clone(st)
	}
	return out
}

// Details returns a human-readable summary of the store layout.
func (s *Store) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#hours: %d\n#window groups: %d\n", len(s.Hoys()), len(s.names))
	sb.WriteString(strings.Repeat("-", 15))
	for sid, name := range s.names {
		fmt.Fprintf(&sb, "\nWindow Group %d: %s\n", sid, name)
		for stateID, state := range s.states[sid] {
			fmt.Fprintf(&sb, "....State %d: %s\n", stateID, state)
		}
	}
	return sb.String()
}
