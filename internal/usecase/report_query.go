package usecase

import (
	"strings"
	"time"

	"InsiderPull/internal/domain/models"
	"InsiderPull/pkg/util"
)

// TradeFilter narrows the published trade list the way the dashboard does.
type TradeFilter struct {
	Since     string           // inclusive YYYYMMDD lower bound, empty for all
	Direction models.Direction // empty for all
	Query     string           // case-insensitive corp name substring
	Limit     int
}

// SinceForPeriod converts a period label into a YYYYMMDD lower bound.
// Unknown labels mean no bound.
func SinceForPeriod(now time.Time, period string) string {
	days, ok := util.PeriodDays(period)
	if !ok {
		return ""
	}
	return util.WindowStart(now, days)
}

// FilterTrades returns the matching trades and the total before the limit.
func FilterTrades(trades []models.Record, f TradeFilter) ([]models.Record, int) {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Record, 0)
	for _, t := range trades {
		if f.Since != "" && !util.InWindow(t.ReportDate, f.Since) {
			continue
		}
		if f.Direction != "" && t.TradeType != f.Direction {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.CorpName), q) {
			continue
		}
		out = append(out, t)
	}
	total := len(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, total
}

// FilterDaily keeps the daily points on or after since.
func FilterDaily(points []models.DailyPoint, since string) []models.DailyPoint {
	out := make([]models.DailyPoint, 0, len(points))
	for _, p := range points {
		if since == "" || util.InWindow(p.Date, since) {
			out = append(out, p)
		}
	}
	return out
}
