package userdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// User is a chat platform account known to the bot. Rows are created on
// first interaction, name fields refreshed on every interaction, and
// never deleted.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID       sharedtypes.UserID `bun:"user_id,pk"`
	Username     *string            `bun:"username,nullzero"`
	FirstName    *string            `bun:"first_name,nullzero"`
	LastName     *string            `bun:"last_name,nullzero"`
	RegisteredAt time.Time          `bun:"registered_at,notnull,default:current_timestamp"`
}

// DisplayName applies the username / first name / fallback derivation.
func (u *User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	if u.FirstName != nil && *u.FirstName != "" {
		return *u.FirstName
	}
	return sharedtypes.UnknownUserName
}
