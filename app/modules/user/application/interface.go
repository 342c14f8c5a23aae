package userservice

import (
	"context"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// Service defines the contract for user identity operations.
type Service interface {
	// RegisterUser creates or refreshes the user and reports whether the
	// row was newly created.
	RegisterUser(ctx context.Context, profile sharedtypes.UserProfile) (results.OperationResult, error)

	// EnsureRegistered refreshes registration and returns the display
	// name, for surfaces that require a registered user before acting.
	EnsureRegistered(ctx context.Context, profile sharedtypes.UserProfile) (string, error)

	// ResolveDisplayName returns the display name for a user, falling
	// back to the unknown-user sentinel when the user is not registered.
	ResolveDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error)
}

// Registered is the success payload of RegisterUser.
type Registered struct {
	UserID      sharedtypes.UserID
	DisplayName string
	NewUser     bool
}

// RegistrationFailed is the business failure payload of RegisterUser.
type RegistrationFailed struct {
	UserID sharedtypes.UserID
	Reason string
}
