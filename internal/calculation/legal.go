package calculation

import (
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// Legal citations attached to result details
var (
	legalINSS         = []string{"Lei nº 8.212/1991, art. 28", "Portaria Interministerial MPS/MF nº 2/2024"}
	legalIRRF         = []string{"Lei nº 7.713/1988", "Lei nº 14.848/2024"}
	legalNightShift   = []string{"CLT, art. 73", "Lei nº 5.889/1973, art. 7º"}
	legalHazardous    = []string{"CLT, art. 193, §1º"}
	legalUnhealthy    = []string{"CLT, art. 192", "NR-15 (Portaria MTb nº 3.214/1978)"}
	legalVacation     = []string{"CLT, arts. 129 a 145", "Constituição Federal, art. 7º, XVII"}
	legalThirteenth   = []string{"Lei nº 4.090/1962", "Lei nº 4.749/1965"}
	legalFGTS         = []string{"Lei nº 8.036/1990"}
	legalRescission   = []string{"CLT, arts. 477 a 487", "CLT, art. 484-A", "Lei nº 12.506/2011", "Lei nº 8.036/1990, art. 18"}
	legalUnemployment = []string{"Lei nº 7.998/1990", "Lei nº 13.134/2015"}
)

var (
	one   = decimal.NewFromInt(1)
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
	// thirty is the commercial month used for daily rates
	thirty = decimal.NewFromInt(30)
	twelve = decimal.NewFromInt(12)
)

func brl(value decimal.Decimal) string {
	return money.FormatBRL(value)
}

// pct formats a fractional rate as a percent label
func pct(rate decimal.Decimal) string {
	return money.FormatPercent(money.Percent(rate))
}

func legal(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
