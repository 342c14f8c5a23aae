package userdb

import (
	"context"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// UserDB is the repository contract for user identity data.
type UserDB interface {
	// UpsertUser creates the user on first contact or refreshes the name
	// fields on every later contact. Returns true when the row was newly
	// created.
	UpsertUser(ctx context.Context, profile sharedtypes.UserProfile) (created bool, err error)
	GetUser(ctx context.Context, userID sharedtypes.UserID) (*User, error)
	GetDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error)
	CountUsers(ctx context.Context) (int, error)
}
