package usecase

import (
	"InsiderPull/internal/domain/models"
	"InsiderPull/pkg/util"
)

// NormalizeDisclosure turns a raw filing row into a Record for entity e.
// The direction is always recomputed from the change reason.
func NormalizeDisclosure(raw models.RawDisclosure, e models.Entity, corpCode string, price int64) models.Record {
	change := util.ParseNumber(raw.SharesChange)
	return models.Record{
		CorpName:     e.Name,
		CorpCode:     corpCode,
		ReportDate:   raw.ReportDate,
		InsiderName:  raw.Reporter,
		Position:     raw.Relation,
		ChangeReason: raw.Reason,
		SharesBefore: util.ParseNumber(raw.SharesBefore),
		SharesAfter:  util.ParseNumber(raw.SharesAfter),
		SharesChange: change,
		TradeType:    models.ClassifyDirection(raw.Reason),
		StockCode:    e.StockCode,
		Sector:       e.Sector,
		Price:        price,
		Amount:       util.Abs64(change) * price,
	}
}
