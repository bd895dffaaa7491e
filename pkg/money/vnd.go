// Package money formats storefront prices.
package money

import (
	"math"
	"strconv"
	"strings"
)

const vndSymbol = "₫"

// FormatVND formats an amount of dong the way vi-VN locales do:
// dot thousands separators, no fraction digits and a trailing symbol,
// e.g. "100.000 ₫".
func FormatVND(amount float64) string {
	return groupThousands(int64(math.Round(amount))) + " " + vndSymbol
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}

	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
