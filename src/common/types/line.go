package types

import "fmt"

type Line struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	ExtraFare int       `json:"extra_fare"`
	Sections  []Section `json:"sections"`
}

// LineRef is the part of a line an edge needs to remember.
type LineRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ExtraFare int    `json:"extra_fare"`
}

func (l *Line) Ref() LineRef {
	return LineRef{ID: l.ID, Name: l.Name, ExtraFare: l.ExtraFare}
}

func (l *Line) indexOf(stationID int64) int {
	for i, section := range l.Sections {
		if section.StationID == stationID {
			return i
		}
	}
	return -1
}

func (l *Line) indexOfFollower(stationID int64) int {
	for i, section := range l.Sections {
		if section.PreStationID != nil && *section.PreStationID == stationID {
			return i
		}
	}
	return -1
}

func (l *Line) Contains(stationID int64) bool {
	return l.indexOf(stationID) >= 0
}

// AddSection inserts a station into the chain. A section without a previous
// station becomes the new head and the old head is re-linked to it, taking the
// new section's weights. Otherwise the station is inserted directly after its
// previous station and whatever followed that station now follows the new one.
func (l *Line) AddSection(section Section) error {
	if l.Contains(section.StationID) {
		return fmt.Errorf("%w: station %d is already on line %q", ErrInvalidSection, section.StationID, l.Name)
	}
	if section.Distance < 0 || section.Duration < 0 {
		return fmt.Errorf("%w: negative weight for station %d", ErrInvalidSection, section.StationID)
	}
	section.LineID = l.ID

	if section.IsHead() {
		if len(l.Sections) > 0 {
			head := &l.Sections[0]
			head.PreStationID = Int64Ptr(section.StationID)
			head.Distance = section.Distance
			head.Duration = section.Duration
		}
		l.Sections = append([]Section{section}, l.Sections...)
		return nil
	}

	pre := l.indexOf(*section.PreStationID)
	if pre < 0 {
		return fmt.Errorf("%w: previous station %d is not on line %q", ErrInvalidSection, *section.PreStationID, l.Name)
	}

	if next := l.indexOfFollower(*section.PreStationID); next >= 0 {
		l.Sections[next].PreStationID = Int64Ptr(section.StationID)
	}

	l.Sections = append(l.Sections, Section{})
	copy(l.Sections[pre+2:], l.Sections[pre+1:])
	l.Sections[pre+1] = section
	return nil
}

// RemoveStation takes a station out of the chain. The following section is
// re-linked to the removed station's predecessor and absorbs its weights.
func (l *Line) RemoveStation(stationID int64) error {
	idx := l.indexOf(stationID)
	if idx < 0 {
		return fmt.Errorf("%w: %d on line %q", ErrStationNotFound, stationID, l.Name)
	}
	removed := l.Sections[idx]

	if next := l.indexOfFollower(stationID); next >= 0 {
		follower := &l.Sections[next]
		follower.PreStationID = removed.PreStationID
		if removed.IsHead() {
			follower.Distance = removed.Distance
			follower.Duration = removed.Duration
		} else {
			follower.Distance += removed.Distance
			follower.Duration += removed.Duration
		}
	}

	l.Sections = append(l.Sections[:idx], l.Sections[idx+1:]...)
	return nil
}

// StationIDs walks the chain from the head. Sections that cannot be reached
// from the head are not returned.
func (l *Line) StationIDs() []int64 {
	followers := make(map[int64]Section, len(l.Sections))
	var head *Section
	for i, section := range l.Sections {
		if section.IsHead() {
			if head == nil {
				head = &l.Sections[i]
			}
			continue
		}
		followers[*section.PreStationID] = section
	}
	if head == nil {
		return []int64{}
	}

	ids := []int64{head.StationID}
	seen := map[int64]bool{head.StationID: true}
	current := head.StationID
	for {
		next, ok := followers[current]
		if !ok || seen[next.StationID] {
			break
		}
		ids = append(ids, next.StationID)
		seen[next.StationID] = true
		current = next.StationID
	}
	return ids
}

// Validate checks that the sections form one simple chain starting at a
// single head and that every link has positive weights.
func (l *Line) Validate() error {
	if len(l.Sections) == 0 {
		return nil
	}

	heads := 0
	stations := make(map[int64]bool, len(l.Sections))
	for _, section := range l.Sections {
		if stations[section.StationID] {
			return fmt.Errorf("%w: station %d appears twice on line %q", ErrInvalidLine, section.StationID, l.Name)
		}
		stations[section.StationID] = true

		if section.IsHead() {
			heads++
			continue
		}
		if section.Distance <= 0 || section.Duration <= 0 {
			return fmt.Errorf("%w: section %d->%d on line %q needs positive distance and duration",
				ErrInvalidLine, *section.PreStationID, section.StationID, l.Name)
		}
	}

	if heads != 1 {
		return fmt.Errorf("%w: line %q has %d first stations", ErrInvalidLine, l.Name, heads)
	}
	if walked := len(l.StationIDs()); walked != len(l.Sections) {
		return fmt.Errorf("%w: line %q is broken after %d of %d stations", ErrInvalidLine, l.Name, walked, len(l.Sections))
	}
	return nil
}
