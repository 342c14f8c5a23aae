package leaderboardrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/infrastructure/handlers"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"

	"go.opentelemetry.io/otel/trace"
)

// LeaderboardRouter registers the leaderboard module's handlers on the
// shared router.
type LeaderboardRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     *eventbus.EventBus
	tracer  trace.Tracer
	metrics handlerwrapper.Metrics
}

// NewLeaderboardRouter creates a new LeaderboardRouter.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	bus *eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *LeaderboardRouter {
	return &LeaderboardRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Configure registers the module's handlers.
func (r *LeaderboardRouter) Configure(ctx context.Context, service leaderboardservice.Service) error {
	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, r.logger, r.tracer)
	if err := r.registerHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register leaderboard handlers: %w", err)
	}
	return nil
}

func (r *LeaderboardRouter) registerHandlers(_ context.Context, handlers leaderboardhandlers.Handlers) error {
	registerHandler(r, scoreevents.UpdatedV1, handlers.HandleScoreUpdated)
	registerHandler(r, leaderboardevents.DisplayRequestedV1, handlers.HandleDisplayRequested)
	registerHandler(r, leaderboardevents.ChartRequestedV1, handlers.HandleChartRequested)
	return nil
}

// registerHandler registers a typed transformation handler. The publish
// topic is empty: produced messages carry their topic in metadata.
func registerHandler[T any](
	r *LeaderboardRouter,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "leaderboard." + topic

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
