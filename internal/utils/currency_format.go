package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// vndFractionDigits matches how vi-VN number formatting shows fractional amounts.
const vndFractionDigits = 3

// FormatVND formats an amount the vi-VN way: "." groups thousands and ","
// separates decimals, e.g. 1234567.5 -> "1.234.567,5".
func FormatVND(amount decimal.Decimal) string {
	rounded := amount.Round(vndFractionDigits)
	negative := rounded.IsNegative()
	s := rounded.Abs().String()

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], strings.TrimRight(s[i+1:], "0")
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatVNDWithSymbol appends the đồng sign, e.g. "50.000 đ".
func FormatVNDWithSymbol(amount decimal.Decimal) string {
	return FormatVND(amount) + " đ"
}
