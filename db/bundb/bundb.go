package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	leaderboarddb "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/infrastructure/repositories"
	privilegedb "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/repositories"
	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	userdb "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/repositories"
	"github.com/ultimate-atpl/study-battle-bot/config"
)

// DBService bundles one bun.DB with every module repository built on it.
type DBService struct {
	UserDB        *userdb.UserDBImpl
	ScoreDB       *scoredb.ScoreDBImpl
	LeaderboardDB *leaderboarddb.LeaderboardDBImpl
	PrivilegeDB   *privilegedb.PrivilegeDBImpl
	db            *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService connects to Postgres and builds the module repositories.
func NewBunDBService(ctx context.Context, cfg *config.Config) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&userdb.User{})
	db.RegisterModel(&scoredb.DailyStat{})
	db.RegisterModel(&scoredb.LifetimeStat{})
	db.RegisterModel(&scoredb.DailyResetLog{})
	db.RegisterModel(&privilegedb.SpecialMessageRight{})

	return &DBService{
		UserDB:        &userdb.UserDBImpl{DB: db},
		ScoreDB:       &scoredb.ScoreDBImpl{DB: db},
		LeaderboardDB: &leaderboarddb.LeaderboardDBImpl{DB: db, DemoSentinel: cfg.Bot.DemoUserSentinel},
		PrivilegeDB:   &privilegedb.PrivilegeDBImpl{DB: db},
		db:            db,
	}, nil
}
