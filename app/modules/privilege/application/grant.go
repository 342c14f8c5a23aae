package privilegeservice

import (
	"context"
	"fmt"
	"time"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// GrantRight appends an unconsumed right for an overtake. Grants stack:
// a user who overtakes twice before writing anything holds two rights.
func (s *PrivilegeService) GrantRight(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "GrantRight", func(ctx context.Context) (results.OperationResult, error) {
		rightID, err := s.repo.Grant(ctx, granteeID, displacedID, oldRank, newRank)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to grant right: %w", err)
		}

		s.logger.InfoContext(ctx, "Special message right granted",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("right_id", int64(rightID)),
			attr.Int64("grantee_id", int64(granteeID)),
		)

		return results.Success(&RightGranted{
			RightID:     rightID,
			GranteeID:   granteeID,
			DisplacedID: displacedID,
			OldRank:     oldRank,
			NewRank:     newRank,
			GrantedAt:   time.Now().UTC(),
		}), nil
	})
}
