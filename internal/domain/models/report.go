package models

import "time"

// BigPlayerThreshold is the minimum amount (KRW) for a large transaction.
const BigPlayerThreshold int64 = 1_000_000_000

type Summary struct {
	TotalBuy    int64     `json:"total_buy"`
	TotalSell   int64     `json:"total_sell"`
	NetAmount   int64     `json:"net_amount"`
	BuyStocks   int       `json:"buy_stocks"`
	SellStocks  int       `json:"sell_stocks"`
	TotalTrades int       `json:"total_trades"`
	Sentiment   Sentiment `json:"sentiment"`
}

type HotStock struct {
	StockCode  string    `json:"stock_code"`
	Name       string    `json:"name"`
	NetAmount  int64     `json:"net_amount"`
	BuyAmount  int64     `json:"buy_amount"`
	SellAmount int64     `json:"sell_amount"`
	Count      int       `json:"count"`
	Sentiment  Sentiment `json:"sentiment"`
}

type BigPlayer struct {
	Name     string    `json:"name"`
	CorpName string    `json:"corp_name"`
	Position string    `json:"position"`
	Type     Direction `json:"type"`
	Amount   int64     `json:"amount"`
	Date     string    `json:"date"`
}

type SectorSentiment struct {
	Sector     string    `json:"sector"`
	NetAmount  int64     `json:"net_amount"`
	BuyAmount  int64     `json:"buy_amount"`
	SellAmount int64     `json:"sell_amount"`
	Count      int       `json:"count"`
	Sentiment  Sentiment `json:"sentiment"`
}

type DailyPoint struct {
	Date string `json:"date"`
	Buy  int64  `json:"buy"`
	Sell int64  `json:"sell"`
}

// Report is the published JSON document.
type Report struct {
	LastUpdated     string            `json:"lastUpdated"`
	Period          string            `json:"period"`
	Summary         Summary           `json:"summary"`
	Trades          []Record          `json:"trades"`
	HotStocks       []HotStock        `json:"hotStocks"`
	BigPlayers      []BigPlayer       `json:"bigPlayers"`
	SectorSentiment []SectorSentiment `json:"sectorSentiment"`
	DailyData       []DailyPoint      `json:"dailyData"`
}

// Snapshot is one finished run: the report plus everything the sinks need
// that the truncated report does not carry.
type Snapshot struct {
	RunID       string
	CollectedAt time.Time
	Report      *Report
	Records     []Record
	Collection  *Collection
}
