package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jack-barr3tt/metro-engine/src/common/utils"
	"github.com/jack-barr3tt/metro-engine/src/network-relay/listener"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publishFunc func(ctx context.Context, channel *amqp.Channel, event types.NetworkEvent) error

// newRelayHandler republishes every recognised event from a feed message.
// Events without a timestamp are stamped with the time they were relayed.
func newRelayHandler(publish publishFunc, now func() time.Time) listener.Handler {
	return func(ctx context.Context, channel *amqp.Channel, body []byte) error {
		events, err := utils.UnmarshalNetworkEvents(body)
		if err != nil {
			return fmt.Errorf("unmarshalling network event: %w", err)
		}

		for _, event := range events {
			if event.Occurred.IsZero() {
				event.Occurred = now().UTC()
			}
			if err := publish(ctx, channel, event); err != nil {
				return fmt.Errorf("publishing %s event: %w", event.Kind, err)
			}
			utils.GetLogger().Debugw("relayed network event", "kind", event.Kind, "action", event.Action, "id", event.ID)
		}
		return nil
	}
}

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()
	logger := utils.GetLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mqConn, err := utils.NewRabbitConnectionOnly()
	if err != nil {
		logger.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer mqConn.Close()

	closeChan := make(chan *amqp.Error)
	mqConn.NotifyClose(closeChan)

	go func() {
		select {
		case err := <-closeChan:
			if err != nil {
				logger.Warnw("RabbitMQ connection closed", "error", err)
				stop()
			}
		case <-ctx.Done():
			return
		}
	}()

	channel, err := mqConn.Channel()
	if err != nil {
		logger.Fatalw("failed to create network channel", "error", err)
	}
	defer channel.Close()

	if err := utils.DeclareNetworkQueue(channel); err != nil {
		logger.Fatalw("failed to declare network queue", "error", err)
	}

	stompConn, err := utils.NewNetworkFeedConnection()
	if err != nil {
		logger.Fatalw("failed to connect to network feed", "error", err)
	}

	var wg sync.WaitGroup

	networkListener := listener.NewListener(
		ctx,
		&wg,
		channel,
		stompConn,
		utils.GetEnv("NETWORK_FEED_TOPIC", "/topic/network"),
		newRelayHandler(utils.PublishNetworkEvent, time.Now),
		logger,
	)

	wg.Add(1)
	go networkListener.Run(stop)

	<-ctx.Done()
	stop()

	wg.Wait()

	stompConn.Disconnect()
}
