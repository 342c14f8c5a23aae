package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating special_message_rights table...")
			if _, err := db.NewCreateTable().Model((*privilegedb.SpecialMessageRight)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			// Peek scans are always per-grantee over unconsumed rows.
			if _, err := db.NewCreateIndex().
				Model((*privilegedb.SpecialMessageRight)(nil)).
				Index("idx_rights_grantee_unused").
				Column("grantee_id").
				Where("used = FALSE").
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping special_message_rights table...")
			if _, err := db.NewDropTable().Model((*privilegedb.SpecialMessageRight)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
