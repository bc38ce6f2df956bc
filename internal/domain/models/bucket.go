package models

// Sentiment labels a net flow.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// SentimentOf applies the three-way rule on a net amount.
func SentimentOf(net int64) Sentiment {
	switch {
	case net > 0:
		return SentimentBullish
	case net < 0:
		return SentimentBearish
	default:
		return SentimentNeutral
	}
}

// Bucket accumulates buy and sell amounts for one grouping key
// (an entity, a sector or a report date).
type Bucket struct {
	Key   string
	Label string
	Buy   int64
	Sell  int64
	Count int
}

// Add folds r into the bucket. Count grows for every record, including
// records that are neither buys nor sells.
func (b *Bucket) Add(r Record) {
	switch r.TradeType {
	case DirectionBuy:
		b.Buy += r.Amount
	case DirectionSell:
		b.Sell += r.Amount
	}
	b.Count++
}

func (b Bucket) Net() int64 { return b.Buy - b.Sell }

func (b Bucket) Sentiment() Sentiment { return SentimentOf(b.Net()) }
