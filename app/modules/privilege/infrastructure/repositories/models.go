package privilegedb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// SpecialMessageRight is one append-only privilege record. A right is
// granted on overtake and consumed by at most one plain message; Used
// never flips back to false.
type SpecialMessageRight struct {
	bun.BaseModel `bun:"table:special_message_rights,alias:r"`

	ID          sharedtypes.RightID `bun:"id,pk,autoincrement"`
	GranteeID   sharedtypes.UserID  `bun:"grantee_id,notnull"`
	DisplacedID sharedtypes.UserID  `bun:"displaced_id,notnull"`
	OldRank     sharedtypes.Rank    `bun:"old_rank,notnull"`
	NewRank     sharedtypes.Rank    `bun:"new_rank,notnull"`
	Used        bool                `bun:"used,notnull,default:false"`
	CreatedAt   time.Time           `bun:"created_at,notnull,default:current_timestamp"`
}
