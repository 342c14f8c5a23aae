package userhandlers

import (
	"context"

	userservice "github.com/ultimate-atpl/study-battle-bot/app/modules/user/application"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// FakeUserService is a programmable stub for the userservice.Service
// interface.
type FakeUserService struct {
	trace []string

	RegisterUserFunc       func(ctx context.Context, profile sharedtypes.UserProfile) (results.OperationResult, error)
	EnsureRegisteredFunc   func(ctx context.Context, profile sharedtypes.UserProfile) (string, error)
	ResolveDisplayNameFunc func(ctx context.Context, userID sharedtypes.UserID) (string, error)
}

func (f *FakeUserService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeUserService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserService) RegisterUser(ctx context.Context, profile sharedtypes.UserProfile) (results.OperationResult, error) {
	f.record("RegisterUser")
	if f.RegisterUserFunc != nil {
		return f.RegisterUserFunc(ctx, profile)
	}
	return results.OperationResult{}, nil
}

func (f *FakeUserService) EnsureRegistered(ctx context.Context, profile sharedtypes.UserProfile) (string, error) {
	f.record("EnsureRegistered")
	if f.EnsureRegisteredFunc != nil {
		return f.EnsureRegisteredFunc(ctx, profile)
	}
	return profile.DisplayName(), nil
}

func (f *FakeUserService) ResolveDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error) {
	f.record("ResolveDisplayName")
	if f.ResolveDisplayNameFunc != nil {
		return f.ResolveDisplayNameFunc(ctx, userID)
	}
	return sharedtypes.UnknownUserName, nil
}

var _ userservice.Service = (*FakeUserService)(nil)
