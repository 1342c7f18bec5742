package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// CSVFormatter writes the report as section,label,value rows
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(outcome *domain.CalculationOutcome) ([]byte, error) {
	report, err := BuildReport(outcome)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"section", "label", "value"}, {"title", "", report.Title}}
	for _, f := range report.Inputs {
		rows = append(rows, []string{SectionInputs, f.Label, f.Value})
	}
	if report.ServiceTime != "" {
		rows = append(rows, []string{SectionInputs, "Tempo de serviço", report.ServiceTime})
	}
	for _, f := range report.Calculation {
		rows = append(rows, []string{SectionCalculation, f.Label, f.Expression})
	}
	for _, f := range report.Result {
		rows = append(rows, []string{SectionResult, f.Label, f.Value})
	}
	for _, n := range report.Notes {
		rows = append(rows, []string{SectionNotes, "", n})
	}
	for _, l := range report.LegalBasis {
		rows = append(rows, []string{SectionLegal, "", l})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
