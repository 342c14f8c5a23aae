package leaderboardservice

import (
	"context"
	"fmt"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// BuildLeaderboard produces the display board for /lb and /top. The ids
// are stripped; rank comparison uses the id-bearing variant from
// CheckForOvertake, built by the same repository pipeline.
func (s *LeaderboardService) BuildLeaderboard(ctx context.Context, scope sharedtypes.Scope, limit int) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "BuildLeaderboard", func(ctx context.Context) (results.OperationResult, error) {
		if !scope.IsValid() {
			return results.Failure(&BoardFailed{
				Scope:  scope,
				Reason: "unknown leaderboard scope",
			}), nil
		}

		board, err := s.boardForScope(ctx, scope, s.clampLimit(limit))
		if err != nil {
			return results.OperationResult{}, err
		}

		return results.Success(&BoardRetrieved{
			Scope:   scope,
			Entries: board.WithoutIDs(),
		}), nil
	})
}

// DailyChampion returns the current daily leader. Used by the reset flow
// before counters are zeroed, so it reads the live board directly.
func (s *LeaderboardService) DailyChampion(ctx context.Context) (*leaderboardtypes.Entry, error) {
	board, err := s.repo.DailyBoard(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily champion: %w", err)
	}
	if len(board) == 0 {
		return nil, nil
	}
	champion := board[0]
	return &champion, nil
}

func (s *LeaderboardService) boardForScope(ctx context.Context, scope sharedtypes.Scope, limit int) (leaderboardtypes.Snapshot, error) {
	switch scope {
	case sharedtypes.ScopeDaily:
		board, err := s.repo.DailyBoard(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to build daily board: %w", err)
		}
		return board, nil
	case sharedtypes.ScopeLifetime:
		board, err := s.repo.LifetimeBoard(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to build lifetime board: %w", err)
		}
		return board, nil
	default:
		return nil, fmt.Errorf("unknown scope %q", scope)
	}
}
