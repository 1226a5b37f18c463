package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc/pool"
)

const generationKey = "network:generation"

// snapshotKey stamps snapshots with the generation they were read under, so a
// snapshot fetched before an invalidation can never be served after it.
func snapshotKey(generation int64) string {
	return fmt.Sprintf("network:snapshot:%d", generation)
}

func (dc *DataClient) generation(ctx context.Context) (int64, error) {
	gen, err := dc.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// LoadNetwork returns the current stations and lines. Snapshots are cached in
// Redis until InvalidateNetwork is called or the TTL runs out; every caller
// gets its own decoded copy.
func (dc *DataClient) LoadNetwork(ctx context.Context) (*types.Network, error) {
	if dc.snapshot == nil {
		return dc.fetch(ctx)
	}

	gen, err := dc.generation(ctx)
	if err != nil {
		dc.logger.Warnw("failed to read network generation, bypassing cache", "error", err)
		return dc.fetch(ctx)
	}
	key := snapshotKey(gen)

	cached, err := dc.snapshot.Get(ctx, key)
	if err == nil && cached != "" {
		var network types.Network
		if err := json.Unmarshal([]byte(cached), &network); err == nil {
			return &network, nil
		}
		dc.logger.Warnw("discarding unreadable network snapshot", "error", err, "generation", gen)
	} else if err != nil {
		dc.logger.Debugw("network snapshot cache miss", "error", err, "generation", gen)
	}

	network, err := dc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if now, err := dc.generation(ctx); err != nil || now != gen {
		dc.logger.Debugw("network changed while loading, not caching", "generation", gen)
		return network, nil
	}

	body, err := json.Marshal(network)
	if err == nil {
		err = dc.snapshot.Set(ctx, key, string(body))
	}
	if err != nil {
		dc.logger.Warnw("failed to cache network snapshot", "error", err)
	}

	return network, nil
}

// InvalidateNetwork moves the cache on to a new generation and drops the
// snapshot of the previous one.
func (dc *DataClient) InvalidateNetwork(ctx context.Context) error {
	if dc.snapshot == nil {
		return nil
	}

	gen, err := dc.rdb.Incr(ctx, generationKey).Result()
	if err != nil {
		return err
	}
	if err := dc.snapshot.Delete(ctx, snapshotKey(gen-1)); err != nil {
		dc.logger.Debugw("failed to drop stale network snapshot", "error", err, "generation", gen-1)
	}
	return nil
}

func (dc *DataClient) fetchNetwork(ctx context.Context) (*types.Network, error) {
	network := &types.Network{}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		stations, err := dc.GetAllStations(ctx)
		network.Stations = stations
		return err
	})
	p.Go(func(ctx context.Context) error {
		lines, err := dc.GetAllLines(ctx)
		network.Lines = lines
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return network, nil
}
