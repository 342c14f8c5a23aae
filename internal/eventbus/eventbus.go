// Package eventbus wires watermill to NATS JetStream. The bus satisfies
// watermill's Publisher and Subscriber interfaces so module routers can
// use it directly; publishing with an empty topic routes by the message's
// topic metadata, which is how transformation handlers address their
// outbound events.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// StreamName is the single JetStream stream holding every bot subject.
const StreamName = "studybattle"

// StreamSubjects are the subject spaces captured by the stream.
var StreamSubjects = []string{
	"user.>",
	"score.>",
	"leaderboard.>",
	"privilege.>",
	"message.>",
}

// EventBus owns the NATS connection and the watermill publisher and
// subscriber built on it.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	js         jetstream.JetStream
	natsConn   *nc.Conn
	logger     *slog.Logger

	streamMu       sync.Mutex
	createdStreams map[string]bool
}

// New connects to NATS, initializes JetStream, and builds the watermill
// publisher/subscriber pair over the connection.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (*EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create watermill subscriber: %w", err)
	}

	bus := &EventBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}

	if err := bus.EnsureStream(ctx, StreamName, StreamSubjects); err != nil {
		_ = bus.Close()
		return nil, err
	}

	return bus, nil
}

// Publish implements message.Publisher. An empty topic falls back to each
// message's topic metadata so transformation handlers can fan out to
// multiple subjects from a single router handler.
func (eb *EventBus) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		subject := topic
		if subject == "" {
			subject = msg.Metadata.Get(handlerwrapper.TopicMetadataKey)
		}
		if subject == "" {
			return fmt.Errorf("message %s has no topic", msg.UUID)
		}

		eb.logger.Debug("Publishing message",
			attr.String("subject", subject),
			attr.String("message_uuid", msg.UUID),
		)

		if err := eb.publisher.Publish(subject, msg); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", subject, err)
		}
	}
	return nil
}

// PublishEvent is the convenience used by the transport edge: it builds a
// message around a JSON payload and publishes it on topic.
func (eb *EventBus) PublishEvent(ctx context.Context, topic string, payload []byte, metadata map[string]string) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	for k, v := range metadata {
		msg.Metadata.Set(k, v)
	}
	return eb.Publish(topic, msg)
}

// Subscribe implements message.Subscriber.
func (eb *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.Info("Subscribing to subject", attr.String("subject", topic))
	return eb.subscriber.Subscribe(ctx, topic)
}

// EnsureStream creates the stream if missing, or extends its subject set.
// Safe to call repeatedly; creation is remembered per process.
func (eb *EventBus) EnsureStream(ctx context.Context, streamName string, subjects []string) error {
	eb.streamMu.Lock()
	defer eb.streamMu.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	stream, err := eb.js.Stream(ctx, streamName)
	if err != nil && err != jetstream.ErrStreamNotFound {
		return fmt.Errorf("failed to check if stream exists: %w", err)
	}

	if err == jetstream.ErrStreamNotFound {
		if _, err := eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		}); err != nil {
			return fmt.Errorf("failed to create stream: %w", err)
		}
		eb.logger.Info("Created JetStream stream", attr.String("stream", streamName))
	} else {
		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info: %w", err)
		}

		missing := missingSubjects(info.Config.Subjects, subjects)
		if len(missing) > 0 {
			info.Config.Subjects = append(info.Config.Subjects, missing...)
			if _, err := eb.js.UpdateStream(ctx, info.Config); err != nil {
				return fmt.Errorf("failed to update stream subjects: %w", err)
			}
			eb.logger.Info("Updated JetStream stream subjects",
				attr.String("stream", streamName),
				attr.Any("added", missing),
			)
		}
	}

	eb.createdStreams[streamName] = true
	return nil
}

func missingSubjects(existing, wanted []string) []string {
	present := make(map[string]bool, len(existing))
	for _, s := range existing {
		present[s] = true
	}
	var missing []string
	for _, s := range wanted {
		if !present[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// Close releases the watermill pair and the NATS connection.
func (eb *EventBus) Close() error {
	var firstErr error
	if eb.publisher != nil {
		if err := eb.publisher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if eb.subscriber != nil {
		if err := eb.subscriber.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return firstErr
}
