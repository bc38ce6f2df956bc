package usecase

import (
	"time"

	"InsiderPull/internal/domain/models"
	"InsiderPull/pkg/util"
)

// ReportLimits caps the list sections of the published report.
type ReportLimits struct {
	Trades     int
	HotStocks  int
	BigPlayers int
}

func DefaultReportLimits() ReportLimits {
	return ReportLimits{Trades: 500, HotStocks: 20, BigPlayers: 20}
}

// ReportBuilder assembles the output document from an aggregation.
type ReportBuilder struct {
	period string
	limits ReportLimits
	now    func() time.Time
}

func NewReportBuilder(period string, limits ReportLimits) *ReportBuilder {
	return &ReportBuilder{period: period, limits: limits, now: time.Now}
}

// Build applies the output-time truncation: trades keep collector order,
// hot stocks and big players keep their ranked order, the sector and daily
// views are emitted whole.
func (b *ReportBuilder) Build(records []models.Record, agg *Aggregation) *models.Report {
	return &models.Report{
		LastUpdated:     util.FormatTimestamp(b.now()),
		Period:          b.period,
		Summary:         agg.Summary,
		Trades:          head(records, b.limits.Trades),
		HotStocks:       head(agg.HotStocks, b.limits.HotStocks),
		BigPlayers:      head(agg.BigPlayers, b.limits.BigPlayers),
		SectorSentiment: nonNil(agg.SectorSentiment),
		DailyData:       nonNil(agg.DailyData),
	}
}

// head returns at most n leading elements, never nil so the JSON is [].
func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		s = s[:n]
	}
	return nonNil(s)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
