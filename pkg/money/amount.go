// Package money normalizes the currency strings carried by the coupon feed
// ("¥4,279", "4279", "$29") into comparable decimal values.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the prefix rendered in front of every currency cell.
const Symbol = "¥"

var (
	stripper      = strings.NewReplacer("¥", "", "￥", "", "$", "", ",", "", "，", "", " ", "", "\u00a0", "", "\t", "")
	leadingNumber = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))([eE][+-]?\d+)?`)
)

// ParseAmount strips currency symbols and thousand separators and parses the
// leading numeric part of s, exponent included. Anything without a numeric
// prefix is zero.
func ParseAmount(s string) decimal.Decimal {
	cleaned := stripper.Replace(strings.TrimSpace(s))
	m := leadingNumber.FindStringSubmatch(cleaned)
	if m == nil {
		return decimal.Zero
	}
	num := strings.TrimSuffix(m[1], ".") + m[2]
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Compare orders two raw amounts by value: -1, 0 or +1.
func Compare(a, b string) int {
	return ParseAmount(a).Cmp(ParseAmount(b))
}

// Display prefixes s with Symbol unless it already carries it.
func Display(s string) string {
	if strings.HasPrefix(s, Symbol) {
		return s
	}
	return Symbol + s
}
