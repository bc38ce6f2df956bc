package usecase

import (
	"sort"

	"InsiderPull/internal/domain/models"
	"InsiderPull/pkg/util"
)

// bucketSet keeps buckets in first-seen order so stable sorts tie-break on it.
type bucketSet struct {
	index map[string]int
	items []*models.Bucket
}

func newBucketSet() *bucketSet {
	return &bucketSet{index: make(map[string]int)}
}

func (s *bucketSet) get(key, label string) *models.Bucket {
	if i, ok := s.index[key]; ok {
		return s.items[i]
	}
	b := &models.Bucket{Key: key, Label: label}
	s.index[key] = len(s.items)
	s.items = append(s.items, b)
	return b
}

// Aggregation holds every derived view over a record sequence, untruncated.
type Aggregation struct {
	Entities        []*models.Bucket
	Sectors         []*models.Bucket
	Days            []*models.Bucket
	HotStocks       []models.HotStock
	SectorSentiment []models.SectorSentiment
	BigPlayers      []models.BigPlayer
	DailyData       []models.DailyPoint
	Summary         models.Summary
}

// Aggregate buckets the records by entity, sector and report date and
// derives the ranked views and the summary.
func Aggregate(records []models.Record) *Aggregation {
	entities := newBucketSet()
	sectors := newBucketSet()
	days := newBucketSet()

	var sum models.Summary
	bigPlayers := make([]models.BigPlayer, 0)

	for _, r := range records {
		entities.get(r.StockCode, r.CorpName).Add(r)
		sectors.get(r.Sector, r.Sector).Add(r)

		// date buckets only carry buy/sell flow
		if r.IsBuy() || r.IsSell() {
			days.get(r.ReportDate, r.ReportDate).Add(r)
		}

		switch {
		case r.IsBuy():
			sum.TotalBuy += r.Amount
		case r.IsSell():
			sum.TotalSell += r.Amount
		}

		if r.Amount >= models.BigPlayerThreshold {
			bigPlayers = append(bigPlayers, models.BigPlayer{
				Name:     r.InsiderName,
				CorpName: r.CorpName,
				Position: r.Position,
				Type:     r.TradeType,
				Amount:   r.Amount,
				Date:     r.ReportDate,
			})
		}
	}

	agg := &Aggregation{
		Entities:   entities.items,
		Sectors:    sectors.items,
		Days:       days.items,
		BigPlayers: bigPlayers,
	}

	agg.HotStocks = rankEntities(entities.items)
	agg.SectorSentiment = rankSectors(sectors.items)
	sort.SliceStable(agg.BigPlayers, func(i, j int) bool {
		return agg.BigPlayers[i].Amount > agg.BigPlayers[j].Amount
	})
	agg.DailyData = dailySeries(days.items)

	sum.NetAmount = sum.TotalBuy - sum.TotalSell
	sum.TotalTrades = len(records)
	for _, b := range entities.items {
		switch b.Sentiment() {
		case models.SentimentBullish:
			sum.BuyStocks++
		case models.SentimentBearish:
			sum.SellStocks++
		}
	}
	sum.Sentiment = models.SentimentOf(sum.NetAmount)
	agg.Summary = sum

	return agg
}

// rankEntities orders entities by the magnitude of their net flow.
func rankEntities(buckets []*models.Bucket) []models.HotStock {
	out := make([]models.HotStock, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.HotStock{
			StockCode:  b.Key,
			Name:       b.Label,
			NetAmount:  b.Net(),
			BuyAmount:  b.Buy,
			SellAmount: b.Sell,
			Count:      b.Count,
			Sentiment:  b.Sentiment(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return util.Abs64(out[i].NetAmount) > util.Abs64(out[j].NetAmount)
	})
	return out
}

// rankSectors orders sectors by signed net flow, most bullish first.
func rankSectors(buckets []*models.Bucket) []models.SectorSentiment {
	out := make([]models.SectorSentiment, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.SectorSentiment{
			Sector:     b.Key,
			NetAmount:  b.Net(),
			BuyAmount:  b.Buy,
			SellAmount: b.Sell,
			Count:      b.Count,
			Sentiment:  b.Sentiment(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetAmount > out[j].NetAmount
	})
	return out
}

func dailySeries(buckets []*models.Bucket) []models.DailyPoint {
	out := make([]models.DailyPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.DailyPoint{Date: b.Key, Buy: b.Buy, Sell: b.Sell})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
