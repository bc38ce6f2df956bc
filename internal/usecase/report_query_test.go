package usecase

import (
	"testing"
	"time"

	"InsiderPull/internal/domain/models"
)

func TestFilterTrades(t *testing.T) {
	trades := []models.Record{
		{CorpName: "삼성전자", ReportDate: "20240320", TradeType: models.DirectionBuy},
		{CorpName: "삼성SDI", ReportDate: "20240110", TradeType: models.DirectionSell},
		{CorpName: "NAVER", ReportDate: "20240325", TradeType: models.DirectionSell},
		{CorpName: "카카오", ReportDate: "20240326", TradeType: models.DirectionOther},
	}

	got, total := FilterTrades(trades, TradeFilter{Query: "삼성"})
	if total != 2 || len(got) != 2 {
		t.Fatalf("name search: total=%d", total)
	}

	got, _ = FilterTrades(trades, TradeFilter{Query: "naver"})
	if len(got) != 1 || got[0].CorpName != "NAVER" {
		t.Fatalf("search must be case-insensitive, got %+v", got)
	}

	got, total = FilterTrades(trades, TradeFilter{Direction: models.DirectionSell})
	if total != 2 || got[0].CorpName != "삼성SDI" || got[1].CorpName != "NAVER" {
		t.Fatalf("direction filter: %+v", got)
	}

	got, total = FilterTrades(trades, TradeFilter{Since: "20240301", Limit: 2})
	if total != 3 || len(got) != 2 || got[0].CorpName != "삼성전자" {
		t.Fatalf("since+limit: total=%d got=%+v", total, got)
	}
}

func TestSinceForPeriod(t *testing.T) {
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)
	if got := SinceForPeriod(now, "1W"); got != "20240324" {
		t.Fatalf("1W = %s", got)
	}
	if got := SinceForPeriod(now, "1M"); got != "20240301" {
		t.Fatalf("1M = %s", got)
	}
	if got := SinceForPeriod(now, "ALL"); got != "" {
		t.Fatalf("unknown period should be unbounded, got %s", got)
	}
}

func TestFilterDaily(t *testing.T) {
	points := []models.DailyPoint{{Date: "20240101"}, {Date: "20240301"}, {Date: "20240315"}}
	if got := FilterDaily(points, "20240301"); len(got) != 2 || got[0].Date != "20240301" {
		t.Fatalf("unexpected daily filter %+v", got)
	}
	if got := FilterDaily(points, ""); len(got) != 3 {
		t.Fatalf("empty since keeps all")
	}
}
