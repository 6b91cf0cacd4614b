// Package ingest is the boundary with the upstream simulation engine: it
// reads newline-delimited JSON sample records and loads them into per-point
// result stores. The engine itself (ray tracing, Radiance invocations) is
// an external collaborator; this package only consumes its numbers.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"

	"daylux/internal/point"
)

// Record is one illuminance sample produced by an upstream simulation run.
// Direct is optional; records without it load only the total slot. The
// first record for a point may carry the point's location and direction.
type Record struct {
	Point     int       `json:"point"`
	Source    string    `json:"source,omitempty"`
	State     string    `json:"state,omitempty"`
	Hour      float64   `json:"hour"`
	Total     float64   `json:"total"`
	Direct    *float64  `json:"direct,omitempty"`
	Location  []float64 `json:"location,omitempty"`
	Direction []float64 `json:"direction,omitempty"`
}

// Load reads newline-delimited JSON records from path. Invalid lines are
// skipped with a warning rather than aborting the whole file.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(line, &r); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Skipping invalid JSON line in samples file")
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading samples file: %w", err)
	}

	log.Info().Str("path", path).Int("count", len(records)).Msg("Loaded sample records")
	return records, nil
}

// Entry pairs a loaded point with its populated store.
type Entry struct {
	ID    int
	Point point.Point
	Store *point.Store
}

// Apply writes records into per-point stores, creating points and stores
// on first use. Entries are returned in ascending point id order.
func Apply(records []Record) ([]Entry, error) {
	stores := make(map[int]*point.Store)
	points := make(map[int]point.Point)
	var order []int

	for _, r := range records {
		store, ok := stores[r.Point]
		if !ok {
			store = point.NewStore()
			stores[r.Point] = store
			order = append(order, r.Point)
		}
		if _, ok := points[r.Point]; !ok && r.Location != nil {
			p, err := point.NewPoint(r.Location, r.Direction)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", r.Point, err)
			}
			points[r.Point] = p
		}

		if r.Direct != nil {
			if err := store.SetCoupledValue([]float64{r.Total, *r.Direct}, r.Hour, r.Source, r.State); err != nil {
				return nil, fmt.Errorf("point %d hour %v: %w", r.Point, r.Hour, err)
			}
		} else {
			store.SetValue(r.Total, r.Hour, r.Source, r.State, false)
		}
	}

	slices.Sort(order)
	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		entries = append(entries, Entry{ID: id, Point: points[id], Store: stores[id]})
	}
	return entries, nil
}
