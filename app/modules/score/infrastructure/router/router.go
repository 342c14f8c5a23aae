package scorerouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	scorehandlers "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/handlers"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"

	"go.opentelemetry.io/otel/trace"
)

// ScoreRouter registers the score module's handlers on the shared router.
type ScoreRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     *eventbus.EventBus
	tracer  trace.Tracer
	metrics handlerwrapper.Metrics
}

// NewScoreRouter creates a new ScoreRouter.
func NewScoreRouter(
	logger *slog.Logger,
	router *message.Router,
	bus *eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *ScoreRouter {
	return &ScoreRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Configure registers the module's handlers.
func (r *ScoreRouter) Configure(ctx context.Context, handlers scorehandlers.Handlers) error {
	if err := r.registerHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register score handlers: %w", err)
	}
	return nil
}

func (r *ScoreRouter) registerHandlers(_ context.Context, handlers scorehandlers.Handlers) error {
	registerHandler(r, scoreevents.UpdateRequestedV1, handlers.HandleScoreUpdateRequested)
	registerHandler(r, userevents.StatsRequestedV1, handlers.HandleStatsRequested)
	registerHandler(r, scoreevents.DailyResetRequestedV1, handlers.HandleDailyResetRequested)
	return nil
}

// registerHandler registers a typed transformation handler. The publish
// topic is empty: produced messages carry their topic in metadata.
func registerHandler[T any](
	r *ScoreRouter,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "score." + topic

	r.router.AddHandler(
		handlerName,
		topic,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTransformingTyped(
			handlerName,
			r.logger,
			r.tracer,
			r.metrics,
			handler,
		),
	)
}
