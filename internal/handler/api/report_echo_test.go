package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"InsiderPull/internal/domain/models"
	"InsiderPull/internal/repository"
	xlogger "InsiderPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

type fakeReader struct {
	report *models.Report
	err    error
}

func (f *fakeReader) Latest(context.Context) (*models.Report, error) {
	return f.report, f.err
}

func testReport() *models.Report {
	trade := func(name, date string, dir models.Direction, amount int64) models.Record {
		return models.Record{CorpName: name, ReportDate: date, TradeType: dir, Amount: amount}
	}
	return &models.Report{
		LastUpdated: "2024-03-31 09:00",
		Period:      "3M",
		Summary:     models.Summary{TotalBuy: 300, TotalSell: 100, NetAmount: 200, TotalTrades: 3},
		Trades: []models.Record{
			trade("삼성전자", "20240330", models.DirectionBuy, 100),
			trade("SK하이닉스", "20240310", models.DirectionSell, 100),
			trade("삼성SDI", "20240105", models.DirectionBuy, 200),
		},
		HotStocks:       []models.HotStock{{StockCode: "005930", NetAmount: 100}},
		BigPlayers:      []models.BigPlayer{},
		SectorSentiment: []models.SectorSentiment{{Sector: "반도체"}},
		DailyData: []models.DailyPoint{
			{Date: "20240105", Buy: 200},
			{Date: "20240310", Sell: 100},
			{Date: "20240330", Buy: 100},
		},
	}
}

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type listData struct {
	Rows  json.RawMessage `json:"rows"`
	Total int             `json:"total"`
}

func serve(t *testing.T, reader *fakeReader, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	h := NewReportEchoHandler(xlogger.Nop(), reader)
	h.now = func() time.Time { return time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC) }
	h.RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func decodeList(t *testing.T, env envelope) ([]models.Record, int) {
	t.Helper()
	var ld listData
	if err := json.Unmarshal(env.Data, &ld); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	var rows []models.Record
	if err := json.Unmarshal(ld.Rows, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	return rows, ld.Total
}

func TestTradesFilters(t *testing.T) {
	reader := &fakeReader{report: testReport()}

	cases := []struct {
		name   string
		target string
		want   int
		total  int
	}{
		{"default period keeps all", "/api/insider/trades", 3, 3},
		{"one week", "/api/insider/trades?period=1W", 1, 1},
		{"one month", "/api/insider/trades?period=1M", 2, 2},
		{"sells only", "/api/insider/trades?type=sell", 1, 1},
		{"name search", "/api/insider/trades?q=%EC%82%BC%EC%84%B1", 2, 2},
		{"limit", "/api/insider/trades?limit=1", 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := serve(t, reader, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			rows, total := decodeList(t, env)
			if len(rows) != tc.want || total != tc.total {
				t.Fatalf("got %d rows (total %d), want %d (total %d)", len(rows), total, tc.want, tc.total)
			}
		})
	}
}

func TestTradesValidation(t *testing.T) {
	reader := &fakeReader{report: testReport()}
	for _, target := range []string{
		"/api/insider/trades?period=1Y",
		"/api/insider/trades?type=hold",
		"/api/insider/trades?limit=501",
		"/api/insider/daily?period=6M",
	} {
		rec, _ := serve(t, reader, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestDaily(t *testing.T) {
	rec, env := serve(t, &fakeReader{report: testReport()}, "/api/insider/daily?period=1M")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var ld listData
	_ = json.Unmarshal(env.Data, &ld)
	if ld.Total != 2 {
		t.Fatalf("daily points = %d, want 2", ld.Total)
	}
}

func TestListViews(t *testing.T) {
	reader := &fakeReader{report: testReport()}
	for target, want := range map[string]int{
		"/api/insider/hot":     1,
		"/api/insider/big":     0,
		"/api/insider/sectors": 1,
	} {
		rec, env := serve(t, reader, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		var ld listData
		_ = json.Unmarshal(env.Data, &ld)
		if ld.Total != want {
			t.Fatalf("%s: total = %d, want %d", target, ld.Total, want)
		}
	}
}

func TestSummaryAndDocument(t *testing.T) {
	reader := &fakeReader{report: testReport()}

	rec, env := serve(t, reader, "/api/insider/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary status = %d", rec.Code)
	}
	var body struct {
		Summary models.Summary `json:"summary"`
	}
	_ = json.Unmarshal(env.Data, &body)
	if body.Summary.NetAmount != 200 {
		t.Fatalf("net = %d", body.Summary.NetAmount)
	}

	rec, _ = serve(t, reader, "/insider.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("document status = %d", rec.Code)
	}
	var doc models.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("document is not a report: %v", err)
	}
	if doc.LastUpdated != "2024-03-31 09:00" || len(doc.Trades) != 3 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestReaderErrors(t *testing.T) {
	rec, _ := serve(t, &fakeReader{err: repository.ErrReportNotFound}, "/api/insider/summary")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing report status = %d, want 404", rec.Code)
	}
	rec, _ = serve(t, &fakeReader{err: errors.New("disk")}, "/api/insider/hot")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("reader failure status = %d, want 500", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec, _ := serve(t, &fakeReader{}, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
}
