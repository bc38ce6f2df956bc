package models

// TradesRequest is the query of GET /api/insider/trades.
type TradesRequest struct {
	Period string `query:"period" default:"3M" validate:"oneof=1W 1M 3M"`
	Type   string `query:"type" default:"all" validate:"oneof=all buy sell"`
	Query  string `query:"q" validate:"max=100"`
	Limit  int    `query:"limit" default:"100" validate:"min=1,max=500"`
}

// DailyRequest is the query of GET /api/insider/daily.
type DailyRequest struct {
	Period string `query:"period" default:"3M" validate:"oneof=1W 1M 3M"`
}

// DirectionFilter maps the type query value onto a trade direction; "all"
// maps to the empty filter.
func DirectionFilter(kind string) Direction {
	switch kind {
	case "buy":
		return DirectionBuy
	case "sell":
		return DirectionSell
	default:
		return ""
	}
}
