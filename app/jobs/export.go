package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
)

// lifetimeLister is the slice of the score service the export needs.
type lifetimeLister interface {
	LifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error)
}

// StatsExporter writes lifetime totals to an xlsx file on disk.
type StatsExporter struct {
	scores    lifetimeLister
	directory string
}

// NewStatsExporter creates a StatsExporter writing into directory.
func NewStatsExporter(scores lifetimeLister, directory string) *StatsExporter {
	return &StatsExporter{scores: scores, directory: directory}
}

// Export writes a snapshot of every positive lifetime counter and
// returns the path of the created file.
func (e *StatsExporter) Export(ctx context.Context) (string, error) {
	totals, err := e.scores.LifetimeTotals(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list lifetime totals: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Lifetime Stats"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Rank", "User ID", "Display Name", "Total Questions"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, total := range totals {
		values := []any{row + 1, int64(total.UserID), total.DisplayName, total.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	if err := os.MkdirAll(e.directory, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("lifetime-stats-%s-%s.xlsx", time.Now().UTC().Format("2006-01-02"), uuid.NewString())
	path := filepath.Join(e.directory, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}
