package privilegeservice

import (
	"context"
	"time"

	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// Service defines the contract for the special-message privilege ledger.
type Service interface {
	// GrantRight appends an unconsumed right for an overtake.
	GrantRight(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (results.OperationResult, error)

	// RedeemForMessage consumes the sender's newest unconsumed right
	// against a plain message. An empty result means the sender held no
	// right (or lost the consume race); that is the normal outcome for
	// most messages.
	RedeemForMessage(ctx context.Context, senderID sharedtypes.UserID, text string) (results.OperationResult, error)

	// RightDetails returns the stored right, or nil for an unknown id.
	RightDetails(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error)
}

// RightGranted is the success payload of GrantRight.
type RightGranted struct {
	RightID     sharedtypes.RightID
	GranteeID   sharedtypes.UserID
	DisplacedID sharedtypes.UserID
	OldRank     sharedtypes.Rank
	NewRank     sharedtypes.Rank
	GrantedAt   time.Time
}

// MessageRedeemed is the success payload of RedeemForMessage.
type MessageRedeemed struct {
	RightID       sharedtypes.RightID
	GranteeID     sharedtypes.UserID
	GranteeName   string
	DisplacedID   sharedtypes.UserID
	DisplacedName string
	Text          string
}
