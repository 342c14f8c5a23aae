package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	leaderboarddb "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/infrastructure/repositories"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/observability/opmetrics"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
	"github.com/ultimate-atpl/study-battle-bot/internal/session"
)

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	repo    leaderboarddb.LeaderboardDB
	session *session.ChatSession
	logger  *slog.Logger
	metrics opmetrics.OperationMetrics
	tracer  trace.Tracer

	// defaultLimit is used when a request carries no explicit limit;
	// maxLimit caps requests and sizes the boards used for rank
	// comparison.
	defaultLimit int
	maxLimit     int
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.LeaderboardDB,
	chatSession *session.ChatSession,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	defaultLimit int,
	maxLimit int,
) *LeaderboardService {
	return &LeaderboardService{
		repo:         repo,
		session:      chatSession,
		logger:       logger,
		metrics:      metrics,
		tracer:       tracer,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and
// panic recovery so every method reports uniformly.
func (s *LeaderboardService) withTelemetry(
	ctx context.Context,
	operationName string,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", result.Failure),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// clampLimit resolves a requested limit against the configured bounds.
func (s *LeaderboardService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}
