package privilegehandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
)

// PrivilegeHandlers implements the Handlers interface for privilege
// events.
type PrivilegeHandlers struct {
	service privilegeservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPrivilegeHandlers creates a new PrivilegeHandlers instance.
func NewPrivilegeHandlers(service privilegeservice.Service, logger *slog.Logger, tracer trace.Tracer) *PrivilegeHandlers {
	return &PrivilegeHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
