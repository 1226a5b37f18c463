package listener

import (
	"context"
	"errors"
	"sync"

	"github.com/go-stomp/stomp/v3"
	"github.com/go-stomp/stomp/v3/frame"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrSubscriptionClosed = errors.New("subscription closed")

type Handler func(ctx context.Context, channel *amqp.Channel, body []byte) error

type Subscriber interface {
	Subscribe(destination string, ack stomp.AckMode, opts ...func(*frame.Frame) error) (*stomp.Subscription, error)
}

type Listener struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	channel    *amqp.Channel
	subscriber Subscriber
	topic      string
	handler    Handler
	logger     *zap.SugaredLogger
}

func NewListener(ctx context.Context, wg *sync.WaitGroup, channel *amqp.Channel, subscriber Subscriber, topic string, handler Handler, logger *zap.SugaredLogger) *Listener {
	return &Listener{
		ctx:        ctx,
		wg:         wg,
		channel:    channel,
		subscriber: subscriber,
		topic:      topic,
		handler:    handler,
		logger:     logger.With("topic", topic),
	}
}

// Start subscribes and relays messages until the context ends. It returns an
// error when the subscription cannot be made or is closed by the broker.
func (l *Listener) Start() error {
	defer l.wg.Done()

	sub, err := l.subscriber.Subscribe(l.topic, stomp.AckAuto)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	l.logger.Infow("listening")

	return l.consume(sub.C)
}

// Run calls stop once Start returns so the process does not outlive its
// subscription.
func (l *Listener) Run(stop func()) {
	if err := l.Start(); err != nil {
		l.logger.Errorw("listener stopped", "error", err)
	}
	stop()
}

func (l *Listener) consume(messages <-chan *stomp.Message) error {
	for {
		select {
		case <-l.ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return ErrSubscriptionClosed
			}
			if msg.Err != nil {
				l.logger.Warnw("error frame from feed", "error", msg.Err)
				continue
			}

			l.Dispatch(msg.Body)
		}
	}
}

// Dispatch hands one message body to the handler. Handler failures are logged
// and the listener keeps going.
func (l *Listener) Dispatch(body []byte) {
	if err := l.handler(l.ctx, l.channel, body); err != nil {
		l.logger.Warnw("failed to handle message", "error", err, "bytes", len(body))
	}
}
