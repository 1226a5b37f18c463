package api

import (
	"context"

	"github.com/jack-barr3tt/metro-engine/src/common/data"
	"github.com/jack-barr3tt/metro-engine/src/common/fare"
	"github.com/jack-barr3tt/metro-engine/src/common/route"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jack-barr3tt/metro-engine/src/common/utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type NetworkReader interface {
	GetAllStations(ctx context.Context) ([]types.Station, error)
	GetAllLines(ctx context.Context) ([]types.Line, error)
}

type RouteFinder interface {
	FindShortestPath(ctx context.Context, sourceRef, targetRef string, metric types.EdgeWeight) (*types.RouteResponse, error)
}

type APIServer struct {
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *zap.SugaredLogger
	Data   NetworkReader
	Routes RouteFinder
}

func NewServer() (*APIServer, error) {
	db, err := utils.NewPostgresConnection()
	logger := utils.GetLogger()
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	policy, err := fare.LoadPolicy(utils.GetEnv("FARE_POLICY_FILE", ""))
	if err != nil {
		logger.Errorw("failed to load fare policy", "error", err)
		return nil, err
	}

	rdb := utils.NewRedisClient()

	dataClient := data.NewDataClient(db, rdb, logger, utils.GetEnvDuration("NETWORK_CACHE_TTL", data.DefaultSnapshotTTL))

	routes := route.NewService(dataClient, dataClient, policy, route.Config{
		ReverseEdges: utils.GetEnvBool("ROUTE_BIDIRECTIONAL", false),
	}, logger)

	return &APIServer{
		DB:     db,
		Redis:  rdb,
		Logger: logger,
		Data:   dataClient,
		Routes: routes,
	}, nil
}

func (s *APIServer) Close() {
	if s.Redis != nil {
		s.Redis.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
}
