package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
)

type FakeLifetimeLister struct {
	LifetimeTotalsFunc func(ctx context.Context) ([]scoredb.LifetimeTotal, error)
}

func (f *FakeLifetimeLister) LifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
	if f.LifetimeTotalsFunc != nil {
		return f.LifetimeTotalsFunc(ctx)
	}
	return nil, nil
}

func TestStatsExporter_Export(t *testing.T) {
	scores := &FakeLifetimeLister{
		LifetimeTotalsFunc: func(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
			return []scoredb.LifetimeTotal{
				{UserID: 1, DisplayName: "Alice", Total: 120},
				{UserID: 2, DisplayName: "Bob", Total: 90},
			}, nil
		},
	}
	exporter := NewStatsExporter(scores, t.TempDir())

	path, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasSuffix(path, ".xlsx") {
		t.Errorf("expected an xlsx path, got %q", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Lifetime Stats")
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][2] != "Alice" || rows[1][3] != "120" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[2][0] != "2" || rows[2][2] != "Bob" {
		t.Errorf("unexpected second row %v", rows[2])
	}
}

func TestStatsExporter_Export_EmptyBoard(t *testing.T) {
	exporter := NewStatsExporter(&FakeLifetimeLister{}, t.TempDir())

	path, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Lifetime Stats")
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestStatsExporter_Export_ListError(t *testing.T) {
	scores := &FakeLifetimeLister{
		LifetimeTotalsFunc: func(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
			return nil, errors.New("database offline")
		},
	}
	exporter := NewStatsExporter(scores, t.TempDir())

	if _, err := exporter.Export(context.Background()); err == nil {
		t.Fatal("expected the listing error to surface")
	}
}
