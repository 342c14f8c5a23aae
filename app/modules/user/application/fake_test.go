package userservice

import (
	"context"

	userdb "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// FakeUserDB is a programmable stub for the userdb.UserDB interface.
type FakeUserDB struct {
	trace []string

	UpsertUserFunc     func(ctx context.Context, profile sharedtypes.UserProfile) (bool, error)
	GetUserFunc        func(ctx context.Context, userID sharedtypes.UserID) (*userdb.User, error)
	GetDisplayNameFunc func(ctx context.Context, userID sharedtypes.UserID) (string, error)
	CountUsersFunc     func(ctx context.Context) (int, error)
}

func NewFakeUserDB() *FakeUserDB {
	return &FakeUserDB{trace: []string{}}
}

func (f *FakeUserDB) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of repository methods called.
func (f *FakeUserDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserDB) UpsertUser(ctx context.Context, profile sharedtypes.UserProfile) (bool, error) {
	f.record("UpsertUser")
	if f.UpsertUserFunc != nil {
		return f.UpsertUserFunc(ctx, profile)
	}
	return false, nil
}

func (f *FakeUserDB) GetUser(ctx context.Context, userID sharedtypes.UserID) (*userdb.User, error) {
	f.record("GetUser")
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, userID)
	}
	return nil, userdb.ErrUserNotFound
}

func (f *FakeUserDB) GetDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error) {
	f.record("GetDisplayName")
	if f.GetDisplayNameFunc != nil {
		return f.GetDisplayNameFunc(ctx, userID)
	}
	return "", userdb.ErrUserNotFound
}

func (f *FakeUserDB) CountUsers(ctx context.Context) (int, error) {
	f.record("CountUsers")
	if f.CountUsersFunc != nil {
		return f.CountUsersFunc(ctx)
	}
	return 0, nil
}

var _ userdb.UserDB = (*FakeUserDB)(nil)
