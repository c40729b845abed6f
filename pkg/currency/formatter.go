// Package currency formats monetary amounts for presentation. Amounts stay
// unrounded floats everywhere else; rounding to two fraction digits happens
// only here, at the presentation boundary.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// USD formats an amount as a US dollar string with a thousands separator,
// e.g. 1299.5 becomes "$1,299.50".
func USD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	rounded := math.Round(amount*100) / 100
	whole := int64(rounded)
	cents := int64(math.Round((rounded - float64(whole)) * 100))

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

// groupThousands inserts commas every three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
