package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid network document")

type StationDocument struct {
	Name string `yaml:"name"`
}

type StopDocument struct {
	Name     string `yaml:"name"`
	Distance int    `yaml:"distance"`
	Duration int    `yaml:"duration"`
}

type LineDocument struct {
	Name      string         `yaml:"name"`
	Color     string         `yaml:"color"`
	ExtraFare int            `yaml:"extraFare"`
	Stations  []StopDocument `yaml:"stations"`
	Closed    []string       `yaml:"closed"`
}

// NetworkDocument is the on-disk description of a network. Stops on a line
// carry the weights of the section that reaches them from the stop before.
// Closed stops are taken out of their line after it is built and trains run
// through them, the sections on either side merging into one.
type NetworkDocument struct {
	Stations []StationDocument `yaml:"stations"`
	Lines    []LineDocument    `yaml:"lines"`
}

func ReadDocument(path string) (*NetworkDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

func ParseDocument(data []byte) (*NetworkDocument, error) {
	var doc NetworkDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Build assigns ids in document order and assembles each line section by
// section so the same chain rules apply as for runtime edits.
func (d *NetworkDocument) Build() (*types.Network, error) {
	network := &types.Network{
		Stations: make([]types.Station, 0, len(d.Stations)),
		Lines:    make([]types.Line, 0, len(d.Lines)),
	}

	ids := make(map[string]int64, len(d.Stations))
	for i, station := range d.Stations {
		name := strings.TrimSpace(station.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: station %d has no name", ErrInvalidDocument, i+1)
		}
		if _, ok := ids[name]; ok {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDocument, name, types.ErrDuplicateStation)
		}
		id := int64(i + 1)
		ids[name] = id
		network.Stations = append(network.Stations, types.Station{ID: id, Name: name})
	}

	lineNames := make(map[string]bool, len(d.Lines))
	for i, doc := range d.Lines {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: line %d has no name", ErrInvalidDocument, i+1)
		}
		if lineNames[name] {
			return nil, fmt.Errorf("%w: line %q declared twice", ErrInvalidDocument, name)
		}
		lineNames[name] = true

		line := types.Line{
			ID:        int64(i + 1),
			Name:      name,
			Color:     doc.Color,
			ExtraFare: doc.ExtraFare,
		}

		var previous *int64
		for _, stop := range doc.Stations {
			id, ok := ids[strings.TrimSpace(stop.Name)]
			if !ok {
				return nil, fmt.Errorf("%w: line %q: %q: %w", ErrInvalidDocument, name, stop.Name, types.ErrStationNotFound)
			}

			section := types.Section{StationID: id, PreStationID: previous}
			if previous != nil {
				section.Distance = stop.Distance
				section.Duration = stop.Duration
			}
			if err := line.AddSection(section); err != nil {
				return nil, err
			}
			previous = types.Int64Ptr(id)
		}

		for _, closed := range doc.Closed {
			id, ok := ids[strings.TrimSpace(closed)]
			if !ok {
				return nil, fmt.Errorf("%w: line %q closes %q: %w", ErrInvalidDocument, name, closed, types.ErrStationNotFound)
			}
			if err := line.RemoveStation(id); err != nil {
				return nil, fmt.Errorf("%w: line %q closes %q: %w", ErrInvalidDocument, name, closed, err)
			}
		}

		if err := line.Validate(); err != nil {
			return nil, err
		}
		network.Lines = append(network.Lines, line)
	}

	return network, nil
}
