package userhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	userservice "github.com/ultimate-atpl/study-battle-bot/app/modules/user/application"
)

// UserHandlers implements the Handlers interface for user events.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) *UserHandlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
