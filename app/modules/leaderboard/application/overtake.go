package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/domain"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// CheckForOvertake rebuilds the daily board and diffs it against the
// session's previous snapshot. The swap and the diff use the same board,
// so what the next caller compares against is exactly what this caller
// produced. Concurrent updates may still interleave swaps; detection is
// best-effort under concurrency and the first board after startup never
// produces an event.
func (s *LeaderboardService) CheckForOvertake(ctx context.Context, actorID sharedtypes.UserID) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "CheckForOvertake", func(ctx context.Context) (results.OperationResult, error) {
		current, err := s.repo.DailyBoard(ctx, s.maxLimit)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to rebuild daily board: %w", err)
		}

		previous, hadPrevious := s.session.SwapDailySnapshot(current)
		if !hadPrevious {
			return results.OperationResult{}, nil
		}

		change := leaderboarddomain.DetectRankChange(actorID, previous, current)
		if change == nil {
			return results.OperationResult{}, nil
		}

		s.logger.InfoContext(ctx, "Overtake detected",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("actor_id", int64(change.ActorID)),
			attr.Int64("displaced_id", int64(change.DisplacedID)),
			attr.Int("old_rank", int(change.OldRank)),
			attr.Int("new_rank", int(change.NewRank)),
		)

		return results.Success(&OvertakeFound{
			ActorID:       change.ActorID,
			ActorName:     nameOf(current, previous, change.ActorID),
			DisplacedID:   change.DisplacedID,
			DisplacedName: nameOf(current, previous, change.DisplacedID),
			OldRank:       change.OldRank,
			NewRank:       change.NewRank,
		}), nil
	})
}

// nameOf resolves a display name from the snapshots, preferring the
// fresher one.
func nameOf(current, previous leaderboardtypes.Snapshot, userID sharedtypes.UserID) string {
	for _, board := range []leaderboardtypes.Snapshot{current, previous} {
		for _, e := range board {
			if e.UserID != nil && *e.UserID == userID {
				return e.DisplayName
			}
		}
	}
	return sharedtypes.UnknownUserName
}
