package models

import "testing"

func TestClassifyDirection(t *testing.T) {
	cases := []struct {
		reason string
		want   Direction
	}{
		{"장내매수", DirectionBuy},
		{"신규 취득", DirectionBuy},
		{"장내매도", DirectionSell},
		{"주식 처분", DirectionSell},
		{"매수 후 일부 매도", DirectionBuy},
		{"처분 및 취득", DirectionBuy},
		{"증여", DirectionOther},
		{"", DirectionOther},
	}
	for _, tc := range cases {
		if got := ClassifyDirection(tc.reason); got != tc.want {
			t.Fatalf("ClassifyDirection(%q) = %q, want %q", tc.reason, got, tc.want)
		}
	}
}

func TestSentimentOf(t *testing.T) {
	if SentimentOf(1) != SentimentBullish {
		t.Fatalf("positive net should be bullish")
	}
	if SentimentOf(-1) != SentimentBearish {
		t.Fatalf("negative net should be bearish")
	}
	if SentimentOf(0) != SentimentNeutral {
		t.Fatalf("zero net should be neutral")
	}
}

func TestBucketAdd(t *testing.T) {
	var b Bucket
	b.Add(Record{TradeType: DirectionBuy, Amount: 300})
	b.Add(Record{TradeType: DirectionSell, Amount: 100})
	b.Add(Record{TradeType: DirectionOther, Amount: 999})

	if b.Buy != 300 || b.Sell != 100 {
		t.Fatalf("unexpected totals buy=%d sell=%d", b.Buy, b.Sell)
	}
	if b.Count != 3 {
		t.Fatalf("other-direction records must be counted, got %d", b.Count)
	}
	if b.Net() != 200 || b.Sentiment() != SentimentBullish {
		t.Fatalf("unexpected net %d / %s", b.Net(), b.Sentiment())
	}
}

func TestRegistryPriceOf(t *testing.T) {
	r := &Registry{
		DefaultPrice: 50_000,
		Entities: []Entity{
			{StockCode: "005930", Name: "삼성전자", Sector: "반도체", Price: 72_000},
			{StockCode: "000880", Name: "한화", Sector: "지주"},
		},
	}
	if got := r.PriceOf("005930"); got != 72_000 {
		t.Fatalf("known price = %d", got)
	}
	if got := r.PriceOf("000880"); got != 50_000 {
		t.Fatalf("unpriced entity = %d", got)
	}
	if got := r.PriceOf("999999"); got != 50_000 {
		t.Fatalf("unknown entity = %d", got)
	}
	if got := (&Registry{}).PriceOf("005930"); got != DefaultPrice {
		t.Fatalf("empty registry = %d", got)
	}
}

func TestCollectionCounters(t *testing.T) {
	c := &Collection{Outcomes: []EntityOutcome{
		{Status: OutcomeOK, Fetched: 4},
		{Status: OutcomeSkipped},
		{Status: OutcomeFailed},
		{Status: OutcomeOK, Fetched: 1},
	}}
	if c.Succeeded() != 2 || c.Skipped() != 1 || c.Failed() != 1 {
		t.Fatalf("unexpected counters %d/%d/%d", c.Succeeded(), c.Skipped(), c.Failed())
	}
	if c.Fetched() != 5 {
		t.Fatalf("fetched = %d", c.Fetched())
	}
	if len(c.Failures()) != 1 {
		t.Fatalf("failures = %d", len(c.Failures()))
	}
}
