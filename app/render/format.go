package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a rupee amount the way the receipt has always shown
// it: thousands separated by commas, decimals only when the value has them.
func formatAmount(d decimal.Decimal) string {
	var s string
	if d.IsInteger() {
		s = d.StringFixed(0)
	} else {
		s = d.StringFixed(2)
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "₹" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
