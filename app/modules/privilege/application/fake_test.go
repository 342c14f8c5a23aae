package privilegeservice

import (
	"context"
	"sync"

	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// FakePrivilegeDB is a programmable stub for the privilegedb.PrivilegeDB
// interface. Safe for concurrent use; the consume-race tests hit it from
// multiple goroutines.
type FakePrivilegeDB struct {
	mu    sync.Mutex
	trace []string

	GrantFunc          func(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (sharedtypes.RightID, error)
	PeekUnconsumedFunc func(ctx context.Context, userID sharedtypes.UserID) (*privilegedb.SpecialMessageRight, error)
	ConsumeFunc        func(ctx context.Context, rightID sharedtypes.RightID) (bool, error)
	GetDetailsFunc     func(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error)
}

func NewFakePrivilegeDB() *FakePrivilegeDB {
	return &FakePrivilegeDB{trace: []string{}}
}

func (f *FakePrivilegeDB) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of repository methods called.
func (f *FakePrivilegeDB) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePrivilegeDB) Grant(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (sharedtypes.RightID, error) {
	f.record("Grant")
	if f.GrantFunc != nil {
		return f.GrantFunc(ctx, granteeID, displacedID, oldRank, newRank)
	}
	return 1, nil
}

func (f *FakePrivilegeDB) PeekUnconsumed(ctx context.Context, userID sharedtypes.UserID) (*privilegedb.SpecialMessageRight, error) {
	f.record("PeekUnconsumed")
	if f.PeekUnconsumedFunc != nil {
		return f.PeekUnconsumedFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakePrivilegeDB) Consume(ctx context.Context, rightID sharedtypes.RightID) (bool, error) {
	f.record("Consume")
	if f.ConsumeFunc != nil {
		return f.ConsumeFunc(ctx, rightID)
	}
	return true, nil
}

func (f *FakePrivilegeDB) GetDetails(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error) {
	f.record("GetDetails")
	if f.GetDetailsFunc != nil {
		return f.GetDetailsFunc(ctx, rightID)
	}
	return nil, nil
}

var _ privilegedb.PrivilegeDB = (*FakePrivilegeDB)(nil)

// FakeNameResolver maps ids to fixed names.
type FakeNameResolver struct {
	Names map[sharedtypes.UserID]string
}

func (f *FakeNameResolver) ResolveDisplayName(_ context.Context, userID sharedtypes.UserID) (string, error) {
	if name, ok := f.Names[userID]; ok {
		return name, nil
	}
	return sharedtypes.UnknownUserName, nil
}

var _ nameResolver = (*FakeNameResolver)(nil)
