package userservice

import (
	"context"
	"errors"
	"fmt"

	userdb "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// RegisterUser creates the user on first contact or refreshes the stored
// name fields on every later one.
func (s *UserService) RegisterUser(ctx context.Context, profile sharedtypes.UserProfile) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RegisterUser", func(ctx context.Context) (results.OperationResult, error) {
		if profile.UserID == 0 {
			return results.Failure(&RegistrationFailed{
				UserID: profile.UserID,
				Reason: "user id is required",
			}), nil
		}

		created, err := s.repo.UpsertUser(ctx, profile)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to upsert user: %w", err)
		}

		return results.Success(&Registered{
			UserID:      profile.UserID,
			DisplayName: profile.DisplayName(),
			NewUser:     created,
		}), nil
	})
}

// EnsureRegistered refreshes registration from a profile and returns the
// display name. Surfaces that must have a registered user before acting,
// like the score counter, go through here.
func (s *UserService) EnsureRegistered(ctx context.Context, profile sharedtypes.UserProfile) (string, error) {
	result, err := s.RegisterUser(ctx, profile)
	if err != nil {
		return "", err
	}
	if failure, ok := result.Failure.(*RegistrationFailed); ok {
		return "", fmt.Errorf("registration rejected: %s", failure.Reason)
	}
	registered, ok := result.Success.(*Registered)
	if !ok {
		return "", errors.New("unexpected registration result payload")
	}
	return registered.DisplayName, nil
}

// ResolveDisplayName looks up the stored display name; unregistered users
// resolve to the unknown-user sentinel rather than an error, matching the
// notification surface's expectations.
func (s *UserService) ResolveDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error) {
	name, err := s.repo.GetDisplayName(ctx, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrUserNotFound) {
			return sharedtypes.UnknownUserName, nil
		}
		return "", fmt.Errorf("failed to resolve display name: %w", err)
	}
	return name, nil
}
