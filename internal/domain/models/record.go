package models

import "strings"

// Direction is the trade direction of a disclosure, stored with the Korean
// labels the report consumers expect.
type Direction string

const (
	DirectionBuy   Direction = "매수"
	DirectionSell  Direction = "매도"
	DirectionOther Direction = "기타"
)

var (
	buyKeywords  = []string{"매수", "취득"}
	sellKeywords = []string{"매도", "처분"}
)

// ClassifyDirection derives the direction from the free-text change reason.
// Buy keywords are checked first, so a reason mentioning both sides is a buy.
func ClassifyDirection(reason string) Direction {
	if containsAny(reason, buyKeywords) {
		return DirectionBuy
	}
	if containsAny(reason, sellKeywords) {
		return DirectionSell
	}
	return DirectionOther
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// RawDisclosure is one upstream filing row before parsing. All values are the
// source's strings, untouched.
type RawDisclosure struct {
	ReportDate   string
	Reporter     string
	Relation     string
	Reason       string
	SharesBefore string
	SharesAfter  string
	SharesChange string
}

// Record is a normalized insider trade. Amount is |SharesChange| * Price.
type Record struct {
	CorpName     string    `json:"corp_name"`
	CorpCode     string    `json:"corp_code"`
	ReportDate   string    `json:"report_date"`
	InsiderName  string    `json:"insider_name"`
	Position     string    `json:"position"`
	ChangeReason string    `json:"change_reason"`
	SharesBefore int64     `json:"shares_before"`
	SharesAfter  int64     `json:"shares_after"`
	SharesChange int64     `json:"shares_change"`
	TradeType    Direction `json:"trade_type"`
	StockCode    string    `json:"stock_code"`
	Sector       string    `json:"sector"`
	Price        int64     `json:"price"`
	Amount       int64     `json:"amount"`
}

func (r Record) IsBuy() bool  { return r.TradeType == DirectionBuy }
func (r Record) IsSell() bool { return r.TradeType == DirectionSell }
