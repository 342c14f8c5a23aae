package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

var ErrUserNotFound = errors.New("user not found")

// UserDBImpl is the bun-backed repository for user data.
type UserDBImpl struct {
	DB *bun.DB
}

// UpsertUser creates the user or refreshes the name fields within a
// transaction, returning whether the row was newly created.
func (db *UserDBImpl) UpsertUser(ctx context.Context, profile sharedtypes.UserProfile) (bool, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.NewSelect().
		Model((*User)(nil)).
		Where("user_id = ?", profile.UserID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	user := &User{
		UserID:    profile.UserID,
		Username:  nilIfEmpty(profile.Username),
		FirstName: nilIfEmpty(profile.FirstName),
		LastName:  nilIfEmpty(profile.LastName),
	}

	if exists {
		_, err = tx.NewUpdate().
			Model(user).
			Column("username", "first_name", "last_name").
			Where("user_id = ?", profile.UserID).
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to refresh user: %w", err)
		}
	} else {
		// A concurrent first contact may have inserted the row between
		// the check and here; the conflict clause keeps that harmless.
		_, err = tx.NewInsert().
			Model(user).
			On("CONFLICT (user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to create user: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return !exists, nil
}

// GetUser retrieves a user by id.
func (db *UserDBImpl) GetUser(ctx context.Context, userID sharedtypes.UserID) (*User, error) {
	user := &User{}
	err := db.DB.NewSelect().Model(user).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetDisplayName resolves the leaderboard display name for a user.
func (db *UserDBImpl) GetDisplayName(ctx context.Context, userID sharedtypes.UserID) (string, error) {
	user, err := db.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.DisplayName(), nil
}

// CountUsers returns the number of registered users.
func (db *UserDBImpl) CountUsers(ctx context.Context) (int, error) {
	count, err := db.DB.NewSelect().Model((*User)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
