package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/ultimate-atpl/study-battle-bot/config"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
)

// Service owns the River client and its scheduled jobs.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewService creates the scheduler. The export job is only registered
// when exports are enabled in cfg.
func NewService(ctx context.Context, cfg *config.Config, bus eventPublisher, exporter *StatsExporter, logger *slog.Logger) (*Service, error) {
	ctxLogger := logger.With(attr.String("component", "river_queue"))

	// River requires pgx, not database/sql.
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for River: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool for River: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database for River: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, newDailyResetWorker(bus, ctxLogger))

	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			dailySchedule{hour: cfg.Reset.Hour, minute: cfg.Reset.Minute},
			func() (river.JobArgs, *river.InsertOpts) {
				return DailyResetArgs{}, nil
			},
			nil,
		),
	}

	if cfg.Export.Enabled {
		river.AddWorker(workers, newStatsExportWorker(exporter, ctxLogger))
		periodic = append(periodic, river.NewPeriodicJob(
			weeklySchedule{weekday: time.Weekday(cfg.Export.Weekday), hour: cfg.Export.Hour},
			func() (river.JobArgs, *river.InsertOpts) {
				return StatsExportArgs{}, nil
			},
			nil,
		))
	}

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 5},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.Info("Scheduler initialized",
		attr.Int("reset_hour", cfg.Reset.Hour),
		attr.Int("reset_minute", cfg.Reset.Minute),
		attr.Bool("export_enabled", cfg.Export.Enabled),
	)
	return &Service{client: client, pool: pool, logger: ctxLogger}, nil
}

// Start starts the scheduler.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.Info("Scheduler started")
	return nil
}

// Stop drains running jobs and releases the pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.Info("Scheduler stopped")
	return nil
}
