package util

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	eok      = decimal.NewFromInt(100_000_000)
	joInEok  = decimal.NewFromInt(10_000)
	joCutoff = decimal.NewFromInt(1_000)
)

// ParseNumber parses a disclosure quantity such as "1,234" or "-5,000".
// Empty strings, a lone "-" and anything unparseable yield 0.
func ParseNumber(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Abs64 returns the absolute value of v.
func Abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// FormatEok renders a KRW amount in 억 units, switching to 조 with one
// decimal once the magnitude reaches 1,000억.
func FormatEok(amount int64) string {
	v := decimal.NewFromInt(amount).Div(eok)
	if v.Abs().GreaterThanOrEqual(joCutoff) {
		return v.Div(joInEok).StringFixedBank(1) + "조"
	}
	return v.StringFixedBank(0) + "억"
}
