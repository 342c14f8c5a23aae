package privilegedb

import (
	"context"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// PrivilegeDB is the repository contract for the special-message ledger.
type PrivilegeDB interface {
	// Grant appends an unconsumed right and returns its id. Always
	// succeeds; the ledger is append-only.
	Grant(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (sharedtypes.RightID, error)

	// PeekUnconsumed returns the most recently granted unconsumed right
	// for a user, or nil. Recency is insertion order (highest id wins),
	// which is deterministic under same-timestamp ties.
	PeekUnconsumed(ctx context.Context, userID sharedtypes.UserID) (*SpecialMessageRight, error)

	// Consume marks a right used. Compare-and-set: exactly one of any
	// number of concurrent callers gets consumed=true; later calls on an
	// already-used right report false without error.
	Consume(ctx context.Context, rightID sharedtypes.RightID) (consumed bool, err error)

	// GetDetails returns the right, or nil if the id is unknown.
	GetDetails(ctx context.Context, rightID sharedtypes.RightID) (*SpecialMessageRight, error)
}
