package utils

import (
	"context"
	"encoding/json"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

func PublishNetworkEvent(ctx context.Context, channel *amqp.Channel, event types.NetworkEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return channel.PublishWithContext(
		ctx,
		"",
		NetworkQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.Occurred,
			Body:         body,
		},
	)
}
