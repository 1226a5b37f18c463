package types

import (
	"fmt"
	"strings"
)

type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Section links two adjacent stations of one line. A nil PreStationID marks
// the first station of the line and contributes no edge.
type Section struct {
	LineID       int64  `json:"line_id"`
	PreStationID *int64 `json:"pre_station_id,omitempty"`
	StationID    int64  `json:"station_id"`
	Distance     int    `json:"distance"`
	Duration     int    `json:"duration"`
}

func (s Section) IsHead() bool {
	return s.PreStationID == nil
}

// Weight returns the section's value for the given metric.
func (s Section) Weight(metric EdgeWeight) int {
	if metric == Duration {
		return s.Duration
	}
	return s.Distance
}

// Network is a read-only snapshot of every station and line.
type Network struct {
	Stations []Station `json:"stations"`
	Lines    []Line    `json:"lines"`
}

type EdgeWeight int

const (
	Distance EdgeWeight = iota
	Duration
)

func (w EdgeWeight) String() string {
	switch w {
	case Distance:
		return "distance"
	case Duration:
		return "duration"
	default:
		return fmt.Sprintf("EdgeWeight(%d)", int(w))
	}
}

func ParseEdgeWeight(value string) (EdgeWeight, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "distance":
		return Distance, nil
	case "duration":
		return Duration, nil
	default:
		return Distance, fmt.Errorf("%w: %q", ErrUnknownEdgeWeight, value)
	}
}

func Int64Ptr(v int64) *int64 {
	return &v
}
