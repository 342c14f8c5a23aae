package privilegerouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
	privilegehandlers "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/handlers"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"

	"go.opentelemetry.io/otel/trace"
)

// PrivilegeRouter registers the privilege module's handlers on the
// shared router.
type PrivilegeRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     *eventbus.EventBus
	tracer  trace.Tracer
	metrics handlerwrapper.Metrics
}

// NewPrivilegeRouter creates a new PrivilegeRouter.
func NewPrivilegeRouter(
	logger *slog.Logger,
	router *message.Router,
	bus *eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *PrivilegeRouter {
	return &PrivilegeRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Configure registers the module's handlers.
func (r *PrivilegeRouter) Configure(ctx context.Context, service privilegeservice.Service) error {
	handlers := privilegehandlers.NewPrivilegeHandlers(service, r.logger, r.tracer)
	if err := r.registerHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register privilege handlers: %w", err)
	}
	return nil
}

func (r *PrivilegeRouter) registerHandlers(_ context.Context, handlers privilegehandlers.Handlers) error {
	registerHandler(r, leaderboardevents.OvertakeDetectedV1, handlers.HandleOvertakeDetected)
	registerHandler(r, privilegeevents.PlainMessageReceivedV1, handlers.HandlePlainMessageReceived)
	return nil
}

// registerHandler registers a typed transformation handler. The publish
// topic is empty: produced messages carry their topic in metadata.
func registerHandler[T any](
	r *PrivilegeRouter,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "privilege." + topic

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
