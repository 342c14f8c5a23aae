package scoreservice

import (
	"context"
	"errors"
	"fmt"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// ApplyDelta adds delta to both counters for the user. Negative deltas
// correct earlier over-reports and clamp at zero rather than going
// negative.
func (s *ScoreService) ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ApplyDelta", func(ctx context.Context) (results.OperationResult, error) {
		if userID == 0 {
			return results.Failure(&ScoreUpdateFailed{
				UserID: userID,
				Reason: "user id is required",
			}), nil
		}
		if delta == 0 {
			return results.Failure(&ScoreUpdateFailed{
				UserID: userID,
				Reason: "delta must be non-zero",
			}), nil
		}

		daily, lifetime, err := s.repo.ApplyDelta(ctx, userID, delta)
		if err != nil {
			if errors.Is(err, scoredb.ErrUserNotFound) {
				return results.Failure(&ScoreUpdateFailed{
					UserID: userID,
					Reason: "user is not registered",
				}), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to apply score delta: %w", err)
		}

		return results.Success(&ScoreApplied{
			UserID:   userID,
			Delta:    delta,
			Daily:    daily,
			Lifetime: lifetime,
		}), nil
	})
}
