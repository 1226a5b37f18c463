package route

import (
	"fmt"
	"math"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

type PathResult struct {
	Stations []types.Station
	Edges    []Edge
	Distance int
	Duration int
}

// Lines returns the lines used by the path, in the order they are first ridden.
func (p *PathResult) Lines() []types.LineRef {
	seen := make(map[int64]bool)
	var lines []types.LineRef
	for _, e := range p.Edges {
		if seen[e.Line.ID] {
			continue
		}
		seen[e.Line.ID] = true
		lines = append(lines, e.Line)
	}
	return lines
}

func (p *PathResult) MaxExtraFare() int {
	extra := 0
	for _, line := range p.Lines() {
		if line.ExtraFare > extra {
			extra = line.ExtraFare
		}
	}
	return extra
}

// FindPath runs Dijkstra from source to target over the graph's metric and
// rides the cheapest parallel edge of every hop. Among equal-cost paths the
// result is stable for a given graph because neighbours are visited in
// station order.
func FindPath(g *Graph, source, target types.Station) (*PathResult, error) {
	if !g.HasStation(source.ID) {
		return nil, fmt.Errorf("%w: source %d", types.ErrStationNotFound, source.ID)
	}
	if !g.HasStation(target.ID) {
		return nil, fmt.Errorf("%w: target %d", types.ErrStationNotFound, target.ID)
	}

	shortest := path.DijkstraFrom(g.Node(source.ID), g)
	nodes, cost := shortest.To(target.ID)
	if len(nodes) == 0 || math.IsInf(cost, 1) {
		return nil, fmt.Errorf("%w: %q and %q", types.ErrNoPath, source.Name, target.Name)
	}

	return reconstructPath(g, nodes), nil
}

func reconstructPath(g *Graph, nodes []graph.Node) *PathResult {
	start, _ := g.Station(nodes[0].ID())
	result := &PathResult{
		Stations: []types.Station{start},
	}
	for i := 1; i < len(nodes); i++ {
		e, _ := g.cheapestEdge(nodes[i-1].ID(), nodes[i].ID())
		station, _ := g.Station(nodes[i].ID())

		result.Edges = append(result.Edges, e)
		result.Stations = append(result.Stations, station)
		result.Distance += e.Section.Distance
		result.Duration += e.Section.Duration
	}
	return result
}
