package privilegedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// PrivilegeDBImpl is the bun-backed privilege ledger.
type PrivilegeDBImpl struct {
	DB *bun.DB
}

// Grant appends an unconsumed right.
func (db *PrivilegeDBImpl) Grant(ctx context.Context, granteeID, displacedID sharedtypes.UserID, oldRank, newRank sharedtypes.Rank) (sharedtypes.RightID, error) {
	right := &SpecialMessageRight{
		GranteeID:   granteeID,
		DisplacedID: displacedID,
		OldRank:     oldRank,
		NewRank:     newRank,
	}
	if _, err := db.DB.NewInsert().
		Model(right).
		Returning("id").
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to grant right: %w", err)
	}
	return right.ID, nil
}

// PeekUnconsumed returns the newest unconsumed right for the user.
func (db *PrivilegeDBImpl) PeekUnconsumed(ctx context.Context, userID sharedtypes.UserID) (*SpecialMessageRight, error) {
	right := &SpecialMessageRight{}
	err := db.DB.NewSelect().
		Model(right).
		Where("grantee_id = ?", userID).
		Where("used = FALSE").
		OrderExpr("id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to peek unconsumed right: %w", err)
	}
	return right, nil
}

// Consume flips used to true for exactly one caller. The WHERE clause
// carries the compare-and-set: an already-used row matches nothing.
func (db *PrivilegeDBImpl) Consume(ctx context.Context, rightID sharedtypes.RightID) (bool, error) {
	res, err := db.DB.NewUpdate().
		Model((*SpecialMessageRight)(nil)).
		Set("used = TRUE").
		Where("id = ?", rightID).
		Where("used = FALSE").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to consume right: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read consume outcome: %w", err)
	}
	return affected == 1, nil
}

// GetDetails returns the right or nil for an unknown id.
func (db *PrivilegeDBImpl) GetDetails(ctx context.Context, rightID sharedtypes.RightID) (*SpecialMessageRight, error) {
	right := &SpecialMessageRight{}
	err := db.DB.NewSelect().
		Model(right).
		Where("id = ?", rightID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load right: %w", err)
	}
	return right, nil
}

var _ PrivilegeDB = (*PrivilegeDBImpl)(nil)
