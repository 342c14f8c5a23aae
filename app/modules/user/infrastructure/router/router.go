package userrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	userservice "github.com/ultimate-atpl/study-battle-bot/app/modules/user/application"
	userhandlers "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/handlers"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"

	"go.opentelemetry.io/otel/trace"
)

// UserRouter registers the user module's handlers on the shared router.
type UserRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     *eventbus.EventBus
	tracer  trace.Tracer
	metrics handlerwrapper.Metrics
}

// NewUserRouter creates a new UserRouter.
func NewUserRouter(
	logger *slog.Logger,
	router *message.Router,
	bus *eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *UserRouter {
	return &UserRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Configure registers the module's handlers.
func (r *UserRouter) Configure(ctx context.Context, service userservice.Service) error {
	handlers := userhandlers.NewUserHandlers(service, r.logger, r.tracer)
	if err := r.registerHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register user handlers: %w", err)
	}
	return nil
}

func (r *UserRouter) registerHandlers(_ context.Context, handlers userhandlers.Handlers) error {
	registerHandler(r, userevents.RegistrationRequestedV1, handlers.HandleRegistrationRequested)
	return nil
}

// registerHandler registers a typed transformation handler. The publish
// topic is empty: produced messages carry their topic in metadata.
func registerHandler[T any](
	r *UserRouter,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "user." + topic

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
