package route

import (
	"fmt"
	"math"
	"sort"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/multi"
)

// Edge is one traversable link of the network. It keeps the section it was
// built from so both distance and duration can be recovered whatever metric
// produced W. Parallel edges between the same stations are told apart by UID.
type Edge struct {
	F, T    graph.Node
	W       float64
	UID     int64
	Section types.Section
	Line    types.LineRef
}

func (e Edge) From() graph.Node { return e.F }

func (e Edge) To() graph.Node { return e.T }

func (e Edge) ReversedLine() graph.Line { e.F, e.T = e.T, e.F; return e }

func (e Edge) ID() int64 { return e.UID }

func (e Edge) Weight() float64 { return e.W }

// Graph is a weighted directed multigraph keyed by station id. It satisfies
// gonum's graph interfaces with nodes visited in insertion order so that
// shortest path searches resolve ties the same way every time.
type Graph struct {
	metric   types.EdgeWeight
	stations map[int64]types.Station
	order    []int64
	position map[int64]int
	lines    *multi.WeightedDirectedGraph
	edges    int64
}

type graphOptions struct {
	reverse bool
}

type GraphOption func(*graphOptions)

// WithReverseEdges adds a current->previous edge alongside every section.
func WithReverseEdges() GraphOption {
	return func(o *graphOptions) {
		o.reverse = true
	}
}

func NewGraph(lines []types.Line, stations []types.Station, metric types.EdgeWeight, opts ...GraphOption) (*Graph, error) {
	options := graphOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	g := &Graph{
		metric:   metric,
		stations: make(map[int64]types.Station, len(stations)),
		order:    make([]int64, 0, len(stations)),
		position: make(map[int64]int, len(stations)),
		lines:    multi.NewWeightedDirectedGraph(),
	}

	for _, station := range stations {
		if _, exists := g.stations[station.ID]; exists {
			continue
		}
		g.stations[station.ID] = station
		g.position[station.ID] = len(g.order)
		g.order = append(g.order, station.ID)
		g.lines.AddNode(multi.Node(station.ID))
	}

	for i := range lines {
		line := &lines[i]
		ref := line.Ref()

		for _, section := range line.Sections {
			if section.IsHead() {
				if !g.HasStation(section.StationID) {
					return nil, fmt.Errorf("%w: id %d on line %q", types.ErrStationNotFound, section.StationID, line.Name)
				}
				continue
			}

			from, to := *section.PreStationID, section.StationID
			if !g.HasStation(from) {
				return nil, fmt.Errorf("%w: id %d on line %q", types.ErrStationNotFound, from, line.Name)
			}
			if !g.HasStation(to) {
				return nil, fmt.Errorf("%w: id %d on line %q", types.ErrStationNotFound, to, line.Name)
			}
			if from == to {
				return nil, fmt.Errorf("%w: station %d links to itself on line %q", types.ErrInvalidSection, from, line.Name)
			}

			weight := section.Weight(metric)
			if weight < 0 {
				return nil, fmt.Errorf("%w: negative %s on %d->%d", types.ErrInvalidSection, metric, from, to)
			}

			g.addEdge(from, to, weight, section, ref)
			if options.reverse {
				g.addEdge(to, from, weight, section, ref)
			}
		}
	}

	return g, nil
}

func (g *Graph) addEdge(from, to int64, weight int, section types.Section, line types.LineRef) {
	g.lines.SetWeightedLine(Edge{
		F:       multi.Node(from),
		T:       multi.Node(to),
		W:       float64(weight),
		UID:     g.edges,
		Section: section,
		Line:    line,
	})
	g.edges++
}

func (g *Graph) Metric() types.EdgeWeight {
	return g.metric
}

func (g *Graph) HasStation(id int64) bool {
	_, ok := g.stations[id]
	return ok
}

func (g *Graph) Station(id int64) (types.Station, bool) {
	station, ok := g.stations[id]
	return station, ok
}

// Stations returns the vertices in the order they were added.
func (g *Graph) Stations() []types.Station {
	stations := make([]types.Station, 0, len(g.order))
	for _, id := range g.order {
		stations = append(stations, g.stations[id])
	}
	return stations
}

// EdgesFrom returns the outgoing edges of a station grouped by neighbour in
// station order, parallel edges in insertion order.
func (g *Graph) EdgesFrom(id int64) []Edge {
	var edges []Edge
	neighbours := g.From(id)
	for neighbours.Next() {
		edges = append(edges, g.EdgesBetween(id, neighbours.Node().ID())...)
	}
	return edges
}

// EdgesBetween returns every parallel edge from one station to another in
// insertion order.
func (g *Graph) EdgesBetween(from, to int64) []Edge {
	lines := g.lines.WeightedLines(from, to)
	if lines == nil {
		return nil
	}

	var edges []Edge
	for lines.Next() {
		edges = append(edges, lines.WeightedLine().(Edge))
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].UID < edges[j].UID })
	return edges
}

func (g *Graph) EdgeCount() int {
	return int(g.edges)
}

// cheapestEdge picks the lowest weight parallel edge, the earliest one on a tie.
func (g *Graph) cheapestEdge(from, to int64) (Edge, bool) {
	edges := g.EdgesBetween(from, to)
	if len(edges) == 0 {
		return Edge{}, false
	}
	best := edges[0]
	for _, e := range edges[1:] {
		if e.W < best.W {
			best = e
		}
	}
	return best, true
}

func (g *Graph) Node(id int64) graph.Node {
	return g.lines.Node(id)
}

func (g *Graph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, multi.Node(id))
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *Graph) From(id int64) graph.Nodes {
	neighbours := graph.NodesOf(g.lines.From(id))
	if len(neighbours) == 0 {
		return graph.Empty
	}
	sort.Slice(neighbours, func(i, j int) bool {
		return g.position[neighbours[i].ID()] < g.position[neighbours[j].ID()]
	})
	return iterator.NewOrderedNodes(neighbours)
}

func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.lines.HasEdgeBetween(xid, yid)
}

func (g *Graph) Edge(uid, vid int64) graph.Edge {
	return g.lines.Edge(uid, vid)
}

// Weight is the cheapest of the parallel edges from x to y.
func (g *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e, ok := g.cheapestEdge(xid, yid)
	if !ok {
		return math.Inf(1), false
	}
	return e.W, true
}
