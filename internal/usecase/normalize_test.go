package usecase

import (
	"testing"

	"InsiderPull/internal/domain/models"
)

func TestNormalizeDisclosure(t *testing.T) {
	e := models.Entity{StockCode: "005930", Name: "삼성전자", Sector: "반도체"}
	raw := models.RawDisclosure{
		ReportDate:   "20240105",
		Reporter:     "홍길동",
		Relation:     "임원",
		Reason:       "장내매도(-)",
		SharesBefore: "10,000",
		SharesAfter:  "7,000",
		SharesChange: "-3,000",
	}

	r := NormalizeDisclosure(raw, e, "00126380", 72_000)

	if r.CorpName != "삼성전자" || r.CorpCode != "00126380" || r.StockCode != "005930" || r.Sector != "반도체" {
		t.Fatalf("unexpected identity fields %+v", r)
	}
	if r.InsiderName != "홍길동" || r.Position != "임원" || r.ChangeReason != "장내매도(-)" || r.ReportDate != "20240105" {
		t.Fatalf("unexpected text fields %+v", r)
	}
	if r.SharesBefore != 10_000 || r.SharesAfter != 7_000 || r.SharesChange != -3_000 {
		t.Fatalf("unexpected share fields %+v", r)
	}
	if r.TradeType != models.DirectionSell {
		t.Fatalf("trade type = %s", r.TradeType)
	}
	if r.Amount != 3_000*72_000 {
		t.Fatalf("amount must be |change| * price, got %d", r.Amount)
	}
}

func TestNormalizeDisclosureTolerantNumbers(t *testing.T) {
	raw := models.RawDisclosure{SharesBefore: "-", SharesAfter: "", SharesChange: "n/a", Reason: "증여"}
	r := NormalizeDisclosure(raw, models.Entity{StockCode: "000880"}, "x", 50_000)
	if r.SharesBefore != 0 || r.SharesAfter != 0 || r.SharesChange != 0 || r.Amount != 0 {
		t.Fatalf("unparseable numbers must become zero: %+v", r)
	}
	if r.TradeType != models.DirectionOther {
		t.Fatalf("trade type = %s", r.TradeType)
	}
}
