package route

import (
	"context"
	"fmt"
	"strings"

	"github.com/jack-barr3tt/metro-engine/src/common/fare"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"go.uber.org/zap"
)

// StationLookup resolves a station reference, either its numeric id or its
// name. A reference that matches nothing yields types.ErrStationNotFound.
type StationLookup interface {
	FindStation(ctx context.Context, ref string) (types.Station, error)
}

// NetworkRepository returns the current network snapshot.
type NetworkRepository interface {
	LoadNetwork(ctx context.Context) (*types.Network, error)
}

type Config struct {
	// ReverseEdges lets every section be ridden in both directions.
	ReverseEdges bool
}

type Service struct {
	stations StationLookup
	network  NetworkRepository
	fare     fare.Policy
	config   Config
	logger   *zap.SugaredLogger
}

func NewService(stations StationLookup, network NetworkRepository, policy fare.Policy, config Config, logger *zap.SugaredLogger) *Service {
	if policy == nil {
		policy = fare.Default()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Service{
		stations: stations,
		network:  network,
		fare:     policy,
		config:   config,
		logger:   logger,
	}
}

func (s *Service) FindShortestPath(ctx context.Context, sourceRef, targetRef string, metric types.EdgeWeight) (*types.RouteResponse, error) {
	// identical references are rejected even when the station does not exist
	if strings.TrimSpace(sourceRef) == strings.TrimSpace(targetRef) {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateStation, sourceRef)
	}

	source, err := s.stations.FindStation(ctx, sourceRef)
	if err != nil {
		return nil, err
	}
	target, err := s.stations.FindStation(ctx, targetRef)
	if err != nil {
		return nil, err
	}

	if source.ID == target.ID {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateStation, source.Name)
	}

	network, err := s.network.LoadNetwork(ctx)
	if err != nil {
		return nil, err
	}

	var opts []GraphOption
	if s.config.ReverseEdges {
		opts = append(opts, WithReverseEdges())
	}

	graph, err := NewGraph(network.Lines, network.Stations, metric, opts...)
	if err != nil {
		return nil, err
	}

	path, err := FindPath(graph, source, target)
	if err != nil {
		return nil, err
	}

	policy := s.fare
	if extra := path.MaxExtraFare(); extra > 0 {
		policy = fare.LineSurcharge{Policy: s.fare, Surcharge: extra}
	}

	response := &types.RouteResponse{
		Stations: path.Stations,
		Distance: path.Distance,
		Duration: path.Duration,
		Fare:     policy.Calculate(path.Distance),
	}

	s.logger.Debugw("route computed",
		"source", source.Name,
		"target", target.Name,
		"metric", metric.String(),
		"stations", len(response.Stations),
		"distance", response.Distance,
		"duration", response.Duration,
		"fare", response.Fare,
	)

	return response, nil
}
