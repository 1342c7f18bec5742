package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// JSONFormatter renders the report together with the raw result. Amounts in
// the raw result are decimal strings.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string {
	if j.Pretty {
		return "json"
	}
	return "json-compact"
}

type jsonDocument struct {
	Report  *Report                    `json:"report"`
	Outcome *domain.CalculationOutcome `json:"outcome"`
}

func (j JSONFormatter) Format(outcome *domain.CalculationOutcome) ([]byte, error) {
	report, err := BuildReport(outcome)
	if err != nil {
		return nil, err
	}

	doc := jsonDocument{Report: report, Outcome: outcome}
	if j.Pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
