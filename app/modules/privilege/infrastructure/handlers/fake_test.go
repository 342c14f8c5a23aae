package privilegehandlers

import (
	"context"

	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// FakePrivilegeService is a programmable stub for the
// privilegeservice.Service interface.
type FakePrivilegeService struct {
	trace []string

	GrantRightFunc       func(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (results.OperationResult, error)
	RedeemForMessageFunc func(ctx context.Context, senderID sharedtypes.UserID, text string) (results.OperationResult, error)
	RightDetailsFunc     func(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error)
}

func NewFakePrivilegeService() *FakePrivilegeService {
	return &FakePrivilegeService{trace: []string{}}
}

func (f *FakePrivilegeService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakePrivilegeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePrivilegeService) GrantRight(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (results.OperationResult, error) {
	f.record("GrantRight")
	if f.GrantRightFunc != nil {
		return f.GrantRightFunc(ctx, granteeID, displacedID, oldRank, newRank)
	}
	return results.OperationResult{}, nil
}

func (f *FakePrivilegeService) RedeemForMessage(ctx context.Context, senderID sharedtypes.UserID, text string) (results.OperationResult, error) {
	f.record("RedeemForMessage")
	if f.RedeemForMessageFunc != nil {
		return f.RedeemForMessageFunc(ctx, senderID, text)
	}
	return results.OperationResult{}, nil
}

func (f *FakePrivilegeService) RightDetails(ctx context.Context, rightID sharedtypes.RightID) (*privilegedb.SpecialMessageRight, error) {
	f.record("RightDetails")
	if f.RightDetailsFunc != nil {
		return f.RightDetailsFunc(ctx, rightID)
	}
	return nil, nil
}

var _ privilegeservice.Service = (*FakePrivilegeService)(nil)
