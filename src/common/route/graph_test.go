package route

import (
	"testing"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

var (
	_ graph.WeightedLine = Edge{}
	_ graph.Weighted     = (*Graph)(nil)
)

func TestNewGraphAddsEveryStation(t *testing.T) {
	g, err := NewGraph([]types.Line{lineTwo()}, allStations(), types.Distance)
	require.NoError(t, err)

	assert.Equal(t, allStations(), g.Stations())
	assert.True(t, g.HasStation(dongDaegu.ID))
	assert.Empty(t, g.EdgesFrom(dongDaegu.ID))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestNewGraphEdgesAreDirected(t *testing.T) {
	g, err := NewGraph([]types.Line{lineTwo()}, allStations(), types.Distance)
	require.NoError(t, err)

	assert.Len(t, g.EdgesBetween(gangnam.ID, yeoksam.ID), 1)
	assert.Empty(t, g.EdgesBetween(yeoksam.ID, gangnam.ID))
}

func TestNewGraphReverseEdges(t *testing.T) {
	g, err := NewGraph([]types.Line{lineTwo()}, allStations(), types.Distance, WithReverseEdges())
	require.NoError(t, err)

	assert.Equal(t, 6, g.EdgeCount())
	back := g.EdgesBetween(yeoksam.ID, gangnam.ID)
	require.Len(t, back, 1)
	assert.Equal(t, 10.0, back[0].Weight())
}

func TestNewGraphWeightsByMetric(t *testing.T) {
	lines := []types.Line{express()}

	byDistance, err := NewGraph(lines, allStations(), types.Distance)
	require.NoError(t, err)
	byDuration, err := NewGraph(lines, allStations(), types.Duration)
	require.NoError(t, err)

	d := byDistance.EdgesBetween(gangnam.ID, samseong.ID)
	require.Len(t, d, 1)
	assert.Equal(t, 15.0, d[0].Weight())
	assert.Equal(t, types.Distance, byDistance.Metric())

	u := byDuration.EdgesBetween(gangnam.ID, samseong.ID)
	require.Len(t, u, 1)
	assert.Equal(t, 60.0, u[0].Weight())

	// the section survives untouched whatever the weight
	assert.Equal(t, d[0].Section, u[0].Section)
	assert.Equal(t, "Express", u[0].Line.Name)
	assert.Equal(t, 900, u[0].Line.ExtraFare)
}

func TestNewGraphKeepsParallelEdges(t *testing.T) {
	other := types.Line{
		ID:   5,
		Name: "Line 5",
		Sections: []types.Section{
			head(5, gangnam.ID),
			link(5, gangnam.ID, yeoksam.ID, 3, 30),
		},
	}

	g, err := NewGraph([]types.Line{lineTwo(), other}, allStations(), types.Distance)
	require.NoError(t, err)

	edges := g.EdgesBetween(gangnam.ID, yeoksam.ID)
	require.Len(t, edges, 2)
	assert.Equal(t, int64(2), edges[0].Line.ID)
	assert.Equal(t, int64(5), edges[1].Line.ID)
	assert.Equal(t, 10.0, edges[0].Weight())
	assert.Equal(t, 3.0, edges[1].Weight())
}

func TestNewGraphUnknownStation(t *testing.T) {
	stations := []types.Station{gangnam, yeoksam, seolleung}

	_, err := NewGraph([]types.Line{lineTwo()}, stations, types.Distance)
	assert.ErrorIs(t, err, types.ErrStationNotFound)

	_, err = NewGraph([]types.Line{lineThree()}, []types.Station{dongDaegu}, types.Distance)
	assert.ErrorIs(t, err, types.ErrStationNotFound)
}

func TestNewGraphNegativeWeight(t *testing.T) {
	line := types.Line{ID: 1, Name: "bad", Sections: []types.Section{
		head(1, gangnam.ID),
		link(1, gangnam.ID, yeoksam.ID, -1, 5),
	}}

	_, err := NewGraph([]types.Line{line}, allStations(), types.Distance)
	assert.ErrorIs(t, err, types.ErrInvalidSection)

	_, err = NewGraph([]types.Line{line}, allStations(), types.Duration)
	assert.NoError(t, err)
}

func TestNewGraphEmpty(t *testing.T) {
	g, err := NewGraph(nil, nil, types.Distance)
	require.NoError(t, err)

	assert.Empty(t, g.Stations())
	assert.Zero(t, g.EdgeCount())
}

func TestNewGraphRejectsSelfLink(t *testing.T) {
	line := types.Line{ID: 1, Name: "loop", Sections: []types.Section{
		head(1, gangnam.ID),
		link(1, gangnam.ID, gangnam.ID, 5, 5),
	}}

	_, err := NewGraph([]types.Line{line}, allStations(), types.Distance)
	assert.ErrorIs(t, err, types.ErrInvalidSection)
}

func TestGraphWeightIsCheapestParallelEdge(t *testing.T) {
	other := types.Line{ID: 5, Name: "Line 5", Sections: []types.Section{
		head(5, gangnam.ID),
		link(5, gangnam.ID, yeoksam.ID, 3, 30),
	}}
	g, err := NewGraph([]types.Line{lineTwo(), other}, allStations(), types.Distance)
	require.NoError(t, err)

	w, ok := g.Weight(gangnam.ID, yeoksam.ID)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)

	_, ok = g.Weight(yeoksam.ID, gangnam.ID)
	assert.False(t, ok)
}

func TestGraphFromFollowsStationOrder(t *testing.T) {
	fan := types.Line{ID: 1, Name: "fan", Sections: []types.Section{
		head(1, samseong.ID),
		link(1, samseong.ID, gangnam.ID, 1, 1),
	}}
	back := types.Line{ID: 2, Name: "back", Sections: []types.Section{
		head(2, samseong.ID),
		link(2, samseong.ID, seolleung.ID, 1, 1),
	}}
	mid := types.Line{ID: 3, Name: "mid", Sections: []types.Section{
		head(3, samseong.ID),
		link(3, samseong.ID, yeoksam.ID, 1, 1),
	}}
	g, err := NewGraph([]types.Line{back, mid, fan}, allStations(), types.Distance)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, []int64{1, 2, 3}, nodeIDs(graph.NodesOf(g.From(samseong.ID))))
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 7}, nodeIDs(graph.NodesOf(g.Nodes())))
}

func nodeIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	return ids
}
