package privilegeevents

import (
	"time"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

const (
	GrantedV1     = "privilege.granted.v1"
	GrantFailedV1 = "privilege.grant.failed.v1"

	PlainMessageReceivedV1 = "message.plain.received.v1"
	MessageAttributedV1    = "privilege.message.attributed.v1"
)

type GrantedPayloadV1 struct {
	RightID     sharedtypes.RightID `json:"right_id"`
	GranteeID   sharedtypes.UserID  `json:"grantee_id"`
	DisplacedID sharedtypes.UserID  `json:"displaced_id"`
	OldRank     sharedtypes.Rank    `json:"old_rank"`
	NewRank     sharedtypes.Rank    `json:"new_rank"`
	GrantedAt   time.Time           `json:"granted_at"`
}

type GrantFailedPayloadV1 struct {
	GranteeID sharedtypes.UserID `json:"grantee_id"`
	Reason    string             `json:"reason"`
}

// PlainMessageReceivedPayloadV1 is every non-command text message; only
// holders of an unconsumed right produce any downstream effect.
type PlainMessageReceivedPayloadV1 struct {
	Profile sharedtypes.UserProfile `json:"profile"`
	ChatID  sharedtypes.ChatID      `json:"chat_id"`
	Text    string                  `json:"text"`
}

// MessageAttributedPayloadV1 is emitted when a plain message consumes a
// right: the text goes out verbatim with attribution naming both users.
type MessageAttributedPayloadV1 struct {
	RightID       sharedtypes.RightID `json:"right_id"`
	GranteeID     sharedtypes.UserID  `json:"grantee_id"`
	GranteeName   string              `json:"grantee_name"`
	DisplacedID   sharedtypes.UserID  `json:"displaced_id"`
	DisplacedName string              `json:"displaced_name"`
	Text          string              `json:"text"`
	// ConfirmChatID is where the private confirmation goes.
	ConfirmChatID sharedtypes.ChatID `json:"confirm_chat_id"`
}
