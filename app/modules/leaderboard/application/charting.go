package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// RenderChart draws the daily board as a PNG bar chart for /chart.
func (s *LeaderboardService) RenderChart(ctx context.Context, limit int) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RenderChart", func(ctx context.Context) (results.OperationResult, error) {
		board, err := s.repo.DailyBoard(ctx, s.clampLimit(limit))
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to build daily board: %w", err)
		}
		if len(board) == 0 {
			return results.Failure(&ChartFailed{
				Reason: "nobody has scored today",
			}), nil
		}

		png, err := renderBoardChart("Bugünün Lider Tablosu", board)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to render chart: %w", err)
		}

		return results.Success(&ChartRendered{PNG: png}), nil
	})
}

func renderBoardChart(title string, board leaderboardtypes.Snapshot) ([]byte, error) {
	bars := make([]chart.Value, len(board))
	for i, e := range board {
		bars[i] = chart.Value{
			Label: e.DisplayName,
			Value: float64(e.Score),
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    120 * len(bars),
		Height:   512,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Bars: bars,
	}
	if graph.Width < 480 {
		graph.Width = 480
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
