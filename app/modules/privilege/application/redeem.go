package privilegeservice

import (
	"context"
	"fmt"

	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// RedeemForMessage checks whether the sender holds an unconsumed right
// and consumes it against the message. The peek and the consume are
// separate statements; the compare-and-set inside Consume guarantees
// that two racing messages redeem the same right at most once.
func (s *PrivilegeService) RedeemForMessage(ctx context.Context, senderID sharedtypes.UserID, text string) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RedeemForMessage", func(ctx context.Context) (results.OperationResult, error) {
		right, err := s.repo.PeekUnconsumed(ctx, senderID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to peek right: %w", err)
		}
		if right == nil {
			return results.OperationResult{}, nil
		}

		consumed, err := s.repo.Consume(ctx, right.ID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to consume right: %w", err)
		}
		if !consumed {
			// Lost the race; the winner fires the broadcast.
			s.logger.InfoContext(ctx, "Right already consumed by a concurrent message",
				attr.ExtractCorrelationID(ctx),
				attr.Int64("right_id", int64(right.ID)),
			)
			return results.OperationResult{}, nil
		}

		granteeName, err := s.names.ResolveDisplayName(ctx, right.GranteeID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to resolve grantee name: %w", err)
		}
		displacedName, err := s.names.ResolveDisplayName(ctx, right.DisplacedID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to resolve displaced name: %w", err)
		}

		return results.Success(&MessageRedeemed{
			RightID:       right.ID,
			GranteeID:     right.GranteeID,
			GranteeName:   granteeName,
			DisplacedID:   right.DisplacedID,
			DisplacedName: displacedName,
			Text:          text,
		}), nil
	})
}

// RightDetails returns the stored right, or nil for an unknown id.
func (s *PrivilegeService) RightDetails(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error) {
	right, err := s.repo.GetDetails(ctx, rightID)
	if err != nil {
		return nil, fmt.Errorf("failed to load right details: %w", err)
	}
	return right, nil
}
