package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineTwo(t *testing.T) *Line {
	t.Helper()

	line := &Line{ID: 2, Name: "Line 2"}
	require.NoError(t, line.AddSection(Section{StationID: 1, Distance: 10, Duration: 10}))
	require.NoError(t, line.AddSection(Section{PreStationID: Int64Ptr(1), StationID: 2, Distance: 10, Duration: 10}))
	require.NoError(t, line.AddSection(Section{PreStationID: Int64Ptr(2), StationID: 3, Distance: 10, Duration: 10}))
	return line
}

func TestAddSectionAppends(t *testing.T) {
	line := lineTwo(t)

	assert.Equal(t, []int64{1, 2, 3}, line.StationIDs())
	for _, section := range line.Sections {
		assert.Equal(t, int64(2), section.LineID)
	}
	require.NoError(t, line.Validate())
}

func TestAddSectionNewHead(t *testing.T) {
	line := lineTwo(t)

	require.NoError(t, line.AddSection(Section{StationID: 4, Distance: 7, Duration: 3}))

	assert.Len(t, line.Sections, 4)
	assert.Equal(t, []int64{4, 1, 2, 3}, line.StationIDs())

	idx := line.indexOf(1)
	require.GreaterOrEqual(t, idx, 0)
	require.NotNil(t, line.Sections[idx].PreStationID)
	assert.Equal(t, int64(4), *line.Sections[idx].PreStationID)
	assert.Equal(t, 7, line.Sections[idx].Distance)
	require.NoError(t, line.Validate())
}

func TestAddSectionInMiddle(t *testing.T) {
	line := lineTwo(t)

	require.NoError(t, line.AddSection(Section{PreStationID: Int64Ptr(1), StationID: 5, Distance: 4, Duration: 4}))

	assert.Equal(t, []int64{1, 5, 2, 3}, line.StationIDs())
	require.NoError(t, line.Validate())
}

func TestAddSectionRejectsBadInput(t *testing.T) {
	line := lineTwo(t)

	err := line.AddSection(Section{PreStationID: Int64Ptr(3), StationID: 2, Distance: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrInvalidSection)

	err = line.AddSection(Section{PreStationID: Int64Ptr(99), StationID: 7, Distance: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestRemoveStation(t *testing.T) {
	for _, id := range []int64{1, 2, 3} {
		line := lineTwo(t)

		require.NoError(t, line.RemoveStation(id))

		assert.Len(t, line.Sections, 2)
		assert.NotContains(t, line.StationIDs(), id)
		require.NoError(t, line.Validate())
	}
}

func TestRemoveStationMergesWeights(t *testing.T) {
	line := lineTwo(t)

	require.NoError(t, line.RemoveStation(2))

	idx := line.indexOf(3)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, int64(1), *line.Sections[idx].PreStationID)
	assert.Equal(t, 20, line.Sections[idx].Distance)
	assert.Equal(t, 20, line.Sections[idx].Duration)
}

func TestRemoveUnknownStation(t *testing.T) {
	line := lineTwo(t)

	assert.ErrorIs(t, line.RemoveStation(42), ErrStationNotFound)
}

func TestValidateBrokenChain(t *testing.T) {
	line := &Line{Name: "broken", Sections: []Section{
		{StationID: 1},
		{PreStationID: Int64Ptr(9), StationID: 2, Distance: 1, Duration: 1},
	}}
	assert.ErrorIs(t, line.Validate(), ErrInvalidLine)

	line = &Line{Name: "two heads", Sections: []Section{
		{StationID: 1},
		{StationID: 2},
	}}
	assert.ErrorIs(t, line.Validate(), ErrInvalidLine)

	line = &Line{Name: "zero", Sections: []Section{
		{StationID: 1},
		{PreStationID: Int64Ptr(1), StationID: 2, Distance: 0, Duration: 1},
	}}
	assert.ErrorIs(t, line.Validate(), ErrInvalidLine)
}

func TestParseEdgeWeight(t *testing.T) {
	w, err := ParseEdgeWeight("Duration")
	require.NoError(t, err)
	assert.Equal(t, Duration, w)

	w, err = ParseEdgeWeight("distance")
	require.NoError(t, err)
	assert.Equal(t, Distance, w)

	_, err = ParseEdgeWeight("fare")
	assert.ErrorIs(t, err, ErrUnknownEdgeWeight)
}
