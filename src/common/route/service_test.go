package route

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/jack-barr3tt/metro-engine/src/common/fare"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStations struct {
	stations []types.Station
	calls    int
}

func (f *fakeStations) FindStation(ctx context.Context, ref string) (types.Station, error) {
	f.calls++
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, s := range f.stations {
			if s.ID == id {
				return s, nil
			}
		}
	}
	for _, s := range f.stations {
		if s.Name == ref {
			return s, nil
		}
	}
	return types.Station{}, types.ErrStationNotFound
}

type fakeNetwork struct {
	network *types.Network
	err     error
	calls   int
}

func (f *fakeNetwork) LoadNetwork(ctx context.Context) (*types.Network, error) {
	f.calls++
	return f.network, f.err
}

func newTestService(lines ...types.Line) (*Service, *fakeStations, *fakeNetwork) {
	stations := &fakeStations{stations: allStations()}
	network := &fakeNetwork{network: &types.Network{Stations: allStations(), Lines: lines}}
	return NewService(stations, network, fare.Default(), Config{}, nil), stations, network
}

func TestFindShortestPath(t *testing.T) {
	service, _, _ := newTestService(lineTwo())

	response, err := service.FindShortestPath(context.Background(), "Gangnam", "Seolleung", types.Distance)
	require.NoError(t, err)

	assert.Equal(t, []types.Station{gangnam, yeoksam, seolleung}, response.Stations)
	assert.Equal(t, 20, response.Distance)
	assert.Equal(t, 20, response.Duration)
	assert.Equal(t, 1450, response.Fare)
}

func TestFindShortestPathByID(t *testing.T) {
	service, _, _ := newTestService(lineTwo())

	response, err := service.FindShortestPath(context.Background(), "1", "4", types.Duration)
	require.NoError(t, err)

	assert.Len(t, response.Stations, 4)
	assert.Equal(t, 30, response.Duration)
}

func TestFindShortestPathSameStation(t *testing.T) {
	service, stations, network := newTestService(lineTwo())

	for _, s := range append(allStations(), types.Station{Name: "Nowhere"}) {
		_, err := service.FindShortestPath(context.Background(), s.Name, s.Name, types.Distance)
		assert.ErrorIs(t, err, types.ErrDuplicateStation)
	}
	assert.Zero(t, stations.calls)
	assert.Zero(t, network.calls)

	_, err := service.FindShortestPath(context.Background(), "1", "Gangnam", types.Distance)
	assert.ErrorIs(t, err, types.ErrDuplicateStation)
	assert.Zero(t, network.calls)
}

func TestFindShortestPathUnknownStation(t *testing.T) {
	service, _, network := newTestService(lineTwo())

	_, err := service.FindShortestPath(context.Background(), "Gangnam", "Nowhere", types.Distance)
	assert.ErrorIs(t, err, types.ErrStationNotFound)

	_, err = service.FindShortestPath(context.Background(), "Nowhere", "Gangnam", types.Distance)
	assert.ErrorIs(t, err, types.ErrStationNotFound)

	assert.Zero(t, network.calls)
}

func TestFindShortestPathNotConnected(t *testing.T) {
	service, _, _ := newTestService(lineTwo(), lineThree())

	_, err := service.FindShortestPath(context.Background(), "Gangnam", "Daegu", types.Distance)
	assert.ErrorIs(t, err, types.ErrNoPath)
}

func TestFindShortestPathReverseEdges(t *testing.T) {
	stations := &fakeStations{stations: allStations()}
	network := &fakeNetwork{network: &types.Network{Stations: allStations(), Lines: []types.Line{lineTwo()}}}

	directed := NewService(stations, network, nil, Config{}, nil)
	_, err := directed.FindShortestPath(context.Background(), "Samseong", "Gangnam", types.Distance)
	assert.ErrorIs(t, err, types.ErrNoPath)

	both := NewService(stations, network, nil, Config{ReverseEdges: true}, nil)
	response, err := both.FindShortestPath(context.Background(), "Samseong", "Gangnam", types.Distance)
	require.NoError(t, err)
	assert.Equal(t, 30, response.Distance)
}

func TestFindShortestPathLineSurcharge(t *testing.T) {
	service, _, _ := newTestService(lineTwo(), express())

	response, err := service.FindShortestPath(context.Background(), "Gangnam", "Samseong", types.Distance)
	require.NoError(t, err)
	assert.Equal(t, 15, response.Distance)
	assert.Equal(t, 1350+900, response.Fare)

	response, err = service.FindShortestPath(context.Background(), "Gangnam", "Samseong", types.Duration)
	require.NoError(t, err)
	assert.Equal(t, 30, response.Distance)
	assert.Equal(t, 1650, response.Fare)
}

func TestFindShortestPathPropagatesErrors(t *testing.T) {
	boom := errors.New("database unavailable")
	stations := &fakeStations{stations: allStations()}
	network := &fakeNetwork{err: boom}
	service := NewService(stations, network, nil, Config{}, nil)

	_, err := service.FindShortestPath(context.Background(), "Gangnam", "Samseong", types.Distance)
	assert.Same(t, boom, err)
}

func TestFindShortestPathInconsistentNetwork(t *testing.T) {
	stations := &fakeStations{stations: allStations()}
	network := &fakeNetwork{network: &types.Network{
		Stations: []types.Station{gangnam, yeoksam},
		Lines:    []types.Line{lineTwo()},
	}}
	service := NewService(stations, network, nil, Config{}, nil)

	_, err := service.FindShortestPath(context.Background(), "Gangnam", "Yeoksam", types.Distance)
	assert.ErrorIs(t, err, types.ErrStationNotFound)
}
