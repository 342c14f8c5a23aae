package scoreservice

import (
	"context"
	"fmt"
	"time"

	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// ResetDaily zeroes every daily counter and logs the reset. Running it
// twice in the same cycle is harmless: the second pass zeroes already
// zero counters.
func (s *ScoreService) ResetDaily(ctx context.Context, triggeredBy string) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ResetDaily", func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.ResetDaily(ctx); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reset daily counters: %w", err)
		}

		return results.Success(&DailyResetDone{
			ResetAt:     time.Now().UTC(),
			TriggeredBy: triggeredBy,
		}), nil
	})
}
