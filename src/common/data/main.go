package data

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultSnapshotTTL = 10 * time.Minute

type DataClient struct {
	pg       *pgxpool.Pool
	rdb      *redis.Client
	snapshot *cache.Cache[string]
	logger   *zap.SugaredLogger

	// fetch loads a fresh snapshot on a cache miss
	fetch func(ctx context.Context) (*types.Network, error)
}

func NewDataClient(db *pgxpool.Pool, rdb *redis.Client, logger *zap.SugaredLogger, ttl time.Duration) *DataClient {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	dc := &DataClient{
		pg:     db,
		rdb:    rdb,
		logger: logger,
	}
	if rdb != nil {
		redisStore := redisstore.NewRedis(rdb, store.WithExpiration(ttl))
		dc.snapshot = cache.New[string](redisStore)
	}
	dc.fetch = dc.fetchNetwork

	return dc
}
