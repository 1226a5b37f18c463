package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jack-barr3tt/metro-engine/src/common/data"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jack-barr3tt/metro-engine/src/common/utils"
)

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()
	logger := utils.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := utils.GetEnv("NETWORK_FILE", "network.yaml")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	doc, err := ReadDocument(path)
	if err != nil {
		logger.Fatalw("failed to read network document", "path", path, "error", err)
	}

	network, err := doc.Build()
	if err != nil {
		logger.Fatalw("network document is invalid", "path", path, "error", err)
	}

	pg, err := utils.NewPostgresConnection()
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	defer pg.Close()

	rdb := utils.NewRedisClient()
	defer rdb.Close()

	dc := data.NewDataClient(pg, rdb, logger, utils.GetEnvDuration("NETWORK_CACHE_TTL", data.DefaultSnapshotTTL))

	logger.Infow("replacing network", "stations", len(network.Stations), "lines", len(network.Lines))
	if err := dc.ReplaceNetwork(ctx, network); err != nil {
		logger.Fatalw("failed to store network", "error", err)
	}

	conn, channel, err := utils.NewRabbitConnection()
	if err != nil {
		logger.Warnw("network stored but change could not be announced", "error", err)
		return
	}
	defer conn.Close()
	defer channel.Close()

	if err := utils.DeclareNetworkQueue(channel); err != nil {
		logger.Warnw("failed to declare network queue", "error", err)
		return
	}

	event := types.NetworkEvent{Kind: types.NetworkLoaded, Action: "replace", Occurred: time.Now().UTC()}
	if err := utils.PublishNetworkEvent(ctx, channel, event); err != nil {
		logger.Warnw("failed to publish network event", "error", err)
		return
	}

	logger.Infow("network loaded", "path", path)
}
