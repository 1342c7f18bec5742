// Package money holds the rounding and formatting rules for Brazilian real amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundCurrency rounds to two decimal places, half away from zero.
func RoundCurrency(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// ProportionalValue prorates full linearly over units of totalUnits and rounds
// the result. A non-positive totalUnits yields zero.
func ProportionalValue(full decimal.Decimal, units, totalUnits int) decimal.Decimal {
	if totalUnits <= 0 || units == 0 {
		return decimal.Zero
	}
	return RoundCurrency(full.Mul(decimal.NewFromInt(int64(units))).Div(decimal.NewFromInt(int64(totalUnits))))
}

// Percent converts a fractional rate (0.2) into percent units (20).
func Percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred).Round(2)
}

// MaxZero clamps negative amounts to zero.
func MaxZero(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// Sum adds the given amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// FormatBRL formats an amount as "R$ 1.234,56".
func FormatBRL(value decimal.Decimal) string {
	sign := ""
	rounded := RoundCurrency(value)
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "R$ " + FormatNumber(rounded)
}

// FormatNumber formats an amount with Brazilian separators and two decimals, e.g. "1.234,56".
func FormatNumber(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + "," + fracPart
	if negative {
		return "-" + out
	}
	return out
}

// FormatPercent renders a value already in percent units, e.g. 7.5 -> "7,5%".
func FormatPercent(value decimal.Decimal) string {
	return strings.Replace(value.Round(2).String(), ".", ",", 1) + "%"
}
