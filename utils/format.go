package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a decimal rounded to whole units with thousands
// separators, e.g. -1234567.8 -> "-1,234,568".
func FormatMoney(d decimal.Decimal) string {
	s := d.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FormatPnl renders a P&L value with its percentage and a direction icon,
// e.g. "📈 1,200 (+20.00%)".
func FormatPnl(val, percent decimal.Decimal) string {
	icon := "📈"
	if val.IsNegative() {
		icon = "📉"
	}
	return fmt.Sprintf("%s %s (%+.2f%%)", icon, FormatMoney(val), percent.InexactFloat64())
}
