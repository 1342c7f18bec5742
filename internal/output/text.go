package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

const ruleWidth = 64

// TextFormatter renders the plain-text report shared and exported by users
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(outcome *domain.CalculationOutcome) ([]byte, error) {
	report, err := BuildReport(outcome)
	if err != nil {
		return nil, err
	}
	return RenderText(report), nil
}

// RenderText writes the report sections in their fixed order
func RenderText(report *Report) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, report.Title)
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf)

	heading(&buf, SectionInputs)
	writeFields(&buf, report.Inputs)
	if report.ServiceTime != "" {
		writeFields(&buf, []Field{{Label: "Tempo de serviço", Value: report.ServiceTime}})
	}
	fmt.Fprintln(&buf)

	heading(&buf, SectionCalculation)
	for _, f := range report.Calculation {
		fmt.Fprintf(&buf, "%s: %s\n", f.Label, f.Expression)
	}
	fmt.Fprintln(&buf)

	heading(&buf, SectionResult)
	writeFields(&buf, report.Result)
	fmt.Fprintln(&buf)

	if len(report.Notes) > 0 {
		heading(&buf, SectionNotes)
		for _, n := range report.Notes {
			fmt.Fprintf(&buf, "• %s\n", n)
		}
		fmt.Fprintln(&buf)
	}

	heading(&buf, SectionLegal)
	for _, l := range report.LegalBasis {
		fmt.Fprintf(&buf, "• %s\n", l)
	}

	return buf.Bytes()
}

func heading(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", ruleWidth))
}

// writeFields aligns values on the widest label; widths count runes so that
// accented labels line up
func writeFields(buf *bytes.Buffer, fields []Field) {
	width := 0
	for _, f := range fields {
		if n := utf8.RuneCountInString(f.Label); n > width {
			width = n
		}
	}
	for _, f := range fields {
		pad := width - utf8.RuneCountInString(f.Label)
		fmt.Fprintf(buf, "%s:%s %s\n", f.Label, strings.Repeat(" ", pad), f.Value)
	}
}
