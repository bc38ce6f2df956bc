package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"InsiderPull/internal/domain/models"
)

func testSnapshot() *models.Snapshot {
	rec := models.Record{
		CorpName: "삼성전자", CorpCode: "00126380", ReportDate: "20240315",
		InsiderName: "홍길동", Position: "임원", ChangeReason: "장내매수",
		SharesChange: 1000, TradeType: models.DirectionBuy, StockCode: "005930",
		Sector: "반도체", Price: 72000, Amount: 72_000_000,
	}
	return &models.Snapshot{
		RunID:       "run-1",
		CollectedAt: time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC),
		Records:     []models.Record{rec},
		Report: &models.Report{
			LastUpdated:     "2024-03-31 09:00",
			Period:          "3M",
			Trades:          []models.Record{rec},
			HotStocks:       []models.HotStock{},
			BigPlayers:      []models.BigPlayer{},
			SectorSentiment: []models.SectorSentiment{},
			DailyData:       []models.DailyPoint{},
		},
	}
}

func TestReportFileSaveAndLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "insider.json")
	f := NewReportFile(path)
	ctx := context.Background()

	if _, err := f.Latest(ctx); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if err := f.Save(ctx, testSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "삼성전자") {
		t.Fatalf("non-ASCII text should not be escaped: %s", s)
	}
	if !strings.Contains(s, `"hotStocks": []`) {
		t.Fatalf("empty lists should serialize as []: %s", s)
	}
	if !strings.Contains(s, "\n  \"period\": \"3M\"") {
		t.Fatalf("expected two-space indentation: %s", s)
	}

	r, err := f.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if r.Period != "3M" || len(r.Trades) != 1 || r.Trades[0].Amount != 72_000_000 {
		t.Fatalf("unexpected report: %+v", r)
	}
	again, _ := f.Latest(ctx)
	if again != r {
		t.Fatalf("unchanged file should be served from cache")
	}
}

func TestReportFileRejectsEmptySnapshot(t *testing.T) {
	f := NewReportFile(filepath.Join(t.TempDir(), "insider.json"))
	if err := f.Save(context.Background(), &models.Snapshot{}); err == nil {
		t.Fatalf("expected error for snapshot without report")
	}
}

func TestReportFileLatestCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insider.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReportFile(path).Latest(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
