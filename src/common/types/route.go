package types

import "time"

type RouteResponse struct {
	Stations []Station `json:"stations"`
	Distance int       `json:"distance"`
	Duration int       `json:"duration"`
	Fare     int       `json:"fare"`
}

type NetworkEventKind string

const (
	StationChanged NetworkEventKind = "station"
	LineChanged    NetworkEventKind = "line"
	SectionChanged NetworkEventKind = "section"
	NetworkLoaded  NetworkEventKind = "network"
)

// NetworkEvent announces that stored network data changed and any cached
// snapshot must be dropped.
type NetworkEvent struct {
	Kind     NetworkEventKind `json:"kind"`
	Action   string           `json:"action"`
	ID       int64            `json:"id,omitempty"`
	Occurred time.Time        `json:"occurred"`
}

func (e NetworkEvent) Valid() bool {
	switch e.Kind {
	case StationChanged, LineChanged, SectionChanged, NetworkLoaded:
		return true
	default:
		return false
	}
}
