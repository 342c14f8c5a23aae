package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	userdb "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating users table...")
			if _, err := db.NewCreateTable().Model((*userdb.User)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping users table...")
			if _, err := db.NewDropTable().Model((*userdb.User)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
