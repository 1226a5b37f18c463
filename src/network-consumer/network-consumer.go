package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jack-barr3tt/metro-engine/src/common/data"
	"github.com/jack-barr3tt/metro-engine/src/common/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Invalidator interface {
	InvalidateNetwork(ctx context.Context) error
}

// handleDelivery drops the cached snapshot once per delivery. Unreadable
// messages are discarded; failed invalidations go back on the queue.
func handleDelivery(ctx context.Context, cache Invalidator, msg amqp.Delivery, logger *zap.SugaredLogger) {
	events, err := utils.UnmarshalNetworkEvents(msg.Body)
	if err != nil {
		logger.Warnw("bad network event", "error", err)
		msg.Nack(false, false)
		return
	}
	if len(events) == 0 {
		msg.Ack(false)
		return
	}

	if err := cache.InvalidateNetwork(ctx); err != nil {
		logger.Warnw("failed to invalidate network snapshot", "error", err)
		msg.Nack(false, true)
		return
	}

	for _, event := range events {
		logger.Infow("network changed", "kind", event.Kind, "action", event.Action, "id", event.ID)
	}
	msg.Ack(false)
}

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()
	logger := utils.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := utils.NewRedisClient()
	defer rdb.Close()

	// Invalidation only touches Redis.
	dc := data.NewDataClient(nil, rdb, logger, utils.GetEnvDuration("NETWORK_CACHE_TTL", data.DefaultSnapshotTTL))

	conn, channel, err := utils.NewRabbitConnection()
	if err != nil {
		logger.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer conn.Close()
	defer channel.Close()

	if err := utils.DeclareNetworkQueue(channel); err != nil {
		logger.Fatalw("failed to declare network queue", "error", err)
	}

	msgs, err := channel.Consume(utils.NetworkQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalw("failed to consume network queue", "error", err)
	}

	logger.Infow("watching network changes", "queue", utils.NetworkQueue)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warnw("network queue closed")
				return
			}
			handleDelivery(ctx, dc, msg, logger)
		}
	}
}
