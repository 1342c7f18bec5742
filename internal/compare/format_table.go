package compare

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	nameWidth  = 44
	numWidth   = 15
	tableWidth = nameWidth + 4*(numWidth+1)
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing termination categories
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("COMPARATIVO DE MODALIDADES DE RESCISÃO\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Modalidade base: %s\n", compSet.BaseCategory.Label()))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Arquivo: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	sb.WriteString(pad("Modalidade", nameWidth))
	for _, col := range []string{"Bruto", "Líquido", "Saque FGTS", "A receber"} {
		sb.WriteString(" " + padLeft(col, numWidth))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nDIFERENÇA EM RELAÇÃO À BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			sb.WriteString(fmt.Sprintf("  A receber:  %s%s (%s%%)\n",
				tf.deltaSymbol(alt.ReceiveDiffFromBase),
				money.FormatBRL(alt.ReceiveDiffFromBase.Abs()),
				alt.ReceivePctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Líquido:    %s%s\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				money.FormatBRL(alt.NetDiffFromBase.Abs())))
			sb.WriteString(fmt.Sprintf("  Seguro-desemprego: %s\n", yesNo(alt.Unemployment)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRESUMO\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) string {
	name := result.Label
	if isBase {
		name += " (base)"
	}

	var sb strings.Builder
	sb.WriteString(pad(tf.truncate(name, nameWidth), nameWidth))
	for _, amount := range []decimal.Decimal{
		result.GrossTotal,
		result.NetTotal,
		result.FGTSWithdrawable,
		result.TotalToReceive,
	} {
		sb.WriteString(" " + padLeft(money.FormatBRL(amount), numWidth))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate shortens s to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}

// pad and padLeft count runes; fmt widths count bytes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// FormatCompact creates a single-line summary of the deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseCategory))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.ReceiveDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.ReceiveDiffFromBase) + money.FormatBRL(alt.ReceiveDiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Category, change))
	}

	return sb.String()
}
