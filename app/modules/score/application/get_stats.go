package scoreservice

import (
	"context"
	"fmt"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// GetStats reads both counters for a user. Users who never solved
// anything read as zero rather than failing.
func (s *ScoreService) GetStats(ctx context.Context, userID sharedtypes.UserID) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "GetStats", func(ctx context.Context) (results.OperationResult, error) {
		daily, lifetime, err := s.repo.GetScores(ctx, userID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to read scores: %w", err)
		}

		return results.Success(&StatsRetrieved{
			UserID:   userID,
			Daily:    daily,
			Lifetime: lifetime,
		}), nil
	})
}

// LifetimeTotals lists every positive lifetime counter for the weekly
// export job. Plain passthrough, so no result envelope.
func (s *ScoreService) LifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
	totals, err := s.repo.AllLifetimeTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifetime totals: %w", err)
	}
	return totals, nil
}
