// Package handlerwrapper adapts typed transformation handlers to watermill.
// A handler receives a decoded payload and returns the messages to publish;
// the wrapper owns decoding, correlation metadata, tracing, and metrics.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
)

// TopicMetadataKey names the outbound topic on produced messages; the
// event bus publisher routes by it when the router's publish topic is
// empty.
const TopicMetadataKey = "topic"

// Result is one outbound message produced by a typed handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// Metrics records per-handler outcomes. Implementations must be safe for
// concurrent use; a nil Metrics disables recording.
type Metrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// WrapTransformingTyped turns a typed transformation handler into a
// watermill HandlerFunc. The inbound payload is JSON-decoded into T;
// returned results become messages carrying the outbound topic in
// metadata plus the inbound correlation id.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics Metrics,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()

		correlationID := middleware.MessageCorrelationID(msg)
		if correlationID == "" {
			correlationID = watermill.NewUUID()
		}
		ctx = attr.WithCorrelationID(ctx, correlationID)

		ctx, span := tracer.Start(ctx, handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_uuid", msg.UUID),
		))
		defer span.End()

		if metrics != nil {
			metrics.RecordHandlerAttempt(ctx, handlerName)
			start := time.Now()
			defer func() {
				metrics.RecordHandlerDuration(ctx, handlerName, time.Since(start))
			}()
		}

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			// A payload that cannot decode will never decode; drop it
			// instead of redelivering forever.
			logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			span.RecordError(err)
			return nil, nil
		}

		handlerResults, err := handler(ctx, &payload)
		if err != nil {
			logger.ErrorContext(ctx, "Handler failed",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			span.RecordError(err)
			return nil, fmt.Errorf("%s: %w", handlerName, err)
		}

		out := make([]*message.Message, 0, len(handlerResults))
		for _, hr := range handlerResults {
			body, err := json.Marshal(hr.Payload)
			if err != nil {
				span.RecordError(err)
				return nil, fmt.Errorf("%s: marshal payload for %s: %w", handlerName, hr.Topic, err)
			}

			produced := message.NewMessage(watermill.NewUUID(), body)
			produced.SetContext(ctx)
			produced.Metadata.Set(TopicMetadataKey, hr.Topic)
			produced.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)
			for k, v := range hr.Metadata {
				produced.Metadata.Set(k, v)
			}
			out = append(out, produced)
		}

		if metrics != nil {
			metrics.RecordHandlerSuccess(ctx, handlerName)
		}
		return out, nil
	}
}
