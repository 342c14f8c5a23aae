package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating score tables...")
			for _, model := range []any{
				(*scoredb.DailyStat)(nil),
				(*scoredb.LifetimeStat)(nil),
				(*scoredb.DailyResetLog)(nil),
			} {
				if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping score tables...")
			for _, model := range []any{
				(*scoredb.DailyResetLog)(nil),
				(*scoredb.LifetimeStat)(nil),
				(*scoredb.DailyStat)(nil),
			} {
				if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
