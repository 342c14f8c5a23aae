package leaderboardhandlers

import (
	"context"
	"errors"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleScoreUpdated reacts to a fresh score: it checks the daily ranks
// for an overtake and refreshes the daily board shown in the chat.
func (h *LeaderboardHandlers) HandleScoreUpdated(ctx context.Context, payload *scoreevents.UpdatedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	var out []handlerwrapper.Result

	overtakeResult, err := h.service.CheckForOvertake(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if found, ok := overtakeResult.Success.(*leaderboardservice.OvertakeFound); ok {
		out = append(out, handlerwrapper.Result{
			Topic: leaderboardevents.OvertakeDetectedV1,
			Payload: &leaderboardevents.OvertakeDetectedPayloadV1{
				ActorID:       found.ActorID,
				ActorName:     found.ActorName,
				DisplacedID:   found.DisplacedID,
				DisplacedName: found.DisplacedName,
				OldRank:       found.OldRank,
				NewRank:       found.NewRank,
			},
		})
	}

	boardResult, err := h.service.BuildLeaderboard(ctx, sharedtypes.ScopeDaily, 0)
	if err != nil {
		return nil, err
	}
	if board, ok := boardResult.Success.(*leaderboardservice.BoardRetrieved); ok {
		out = append(out, handlerwrapper.Result{
			Topic: leaderboardevents.RetrievedV1,
			Payload: &leaderboardevents.RetrievedPayloadV1{
				Scope:         sharedtypes.ScopeDaily,
				ChatID:        payload.ChatID,
				Entries:       board.Entries,
				AutoTriggered: true,
			},
		})
	}

	return out, nil
}
