package privilegehandlers

import (
	"context"
	"errors"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleOvertakeDetected grants the overtaking user a one-time special
// message right. The overtake broadcast itself is the notifier's job;
// this handler only writes the ledger.
func (h *PrivilegeHandlers) HandleOvertakeDetected(ctx context.Context, payload *leaderboardevents.OvertakeDetectedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GrantRight(ctx, payload.ActorID, payload.DisplacedID, payload.OldRank, payload.NewRank)
	if err != nil {
		return nil, err
	}

	granted, ok := result.Success.(*privilegeservice.RightGranted)
	if !ok {
		return nil, errors.New("unexpected grant result payload")
	}

	return []handlerwrapper.Result{{
		Topic: privilegeevents.GrantedV1,
		Payload: &privilegeevents.GrantedPayloadV1{
			RightID:     granted.RightID,
			GranteeID:   granted.GranteeID,
			DisplacedID: granted.DisplacedID,
			OldRank:     granted.OldRank,
			NewRank:     granted.NewRank,
			GrantedAt:   granted.GrantedAt,
		},
	}}, nil
}
