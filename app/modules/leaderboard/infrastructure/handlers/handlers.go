package leaderboardhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
)

// LeaderboardHandlers implements the Handlers interface for leaderboard
// events.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
