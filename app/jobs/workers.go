package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
)

// eventPublisher is the slice of the event bus the workers need.
type eventPublisher interface {
	PublishEvent(ctx context.Context, topic string, payload []byte, metadata map[string]string) error
}

// dailyResetWorker publishes the reset request at the scheduled time.
// The score module does the actual zeroing; keeping the worker a pure
// publisher means a crashed reset is retried through the bus, not here.
type dailyResetWorker struct {
	river.WorkerDefaults[DailyResetArgs]

	bus    eventPublisher
	logger *slog.Logger
}

func newDailyResetWorker(bus eventPublisher, logger *slog.Logger) *dailyResetWorker {
	return &dailyResetWorker{bus: bus, logger: logger}
}

func (w *dailyResetWorker) Work(ctx context.Context, job *river.Job[DailyResetArgs]) error {
	w.logger.InfoContext(ctx, "Triggering scheduled daily reset", attr.Int64("job_id", job.ID))

	payload, err := json.Marshal(&scoreevents.DailyResetRequestedPayloadV1{
		TriggeredBy:      "scheduler",
		AnnounceChampion: true,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reset request: %w", err)
	}
	if err := w.bus.PublishEvent(ctx, scoreevents.DailyResetRequestedV1, payload, nil); err != nil {
		return fmt.Errorf("failed to publish reset request: %w", err)
	}
	return nil
}

// statsExportWorker writes the periodic lifetime stats spreadsheet.
type statsExportWorker struct {
	river.WorkerDefaults[StatsExportArgs]

	exporter *StatsExporter
	logger   *slog.Logger
}

func newStatsExportWorker(exporter *StatsExporter, logger *slog.Logger) *statsExportWorker {
	return &statsExportWorker{exporter: exporter, logger: logger}
}

func (w *statsExportWorker) Work(ctx context.Context, job *river.Job[StatsExportArgs]) error {
	path, err := w.exporter.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export lifetime stats: %w", err)
	}
	w.logger.InfoContext(ctx, "Exported lifetime stats",
		attr.Int64("job_id", job.ID),
		attr.String("path", path),
	)
	return nil
}
