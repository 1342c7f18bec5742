package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// Formatter renders a calculation outcome
type Formatter interface {
	Name() string
	Format(outcome *domain.CalculationOutcome) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(outcome *domain.CalculationOutcome) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(outcome *domain.CalculationOutcome) ([]byte, error) {
	return f.F(outcome)
}

// FormatterNames lists the names GetFormatterByName accepts
var FormatterNames = []string{"text", "json", "json-compact", "csv"}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "text", "console", "":
		return TextFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "json-compact":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// WriteFormatted renders outcome with f and saves it in dir under a
// timestamped name. It returns the path written.
func WriteFormatted(f Formatter, outcome *domain.CalculationOutcome, dir, ext string) (string, error) {
	data, err := f.Format(outcome)
	if err != nil {
		return "", fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}

	name := fmt.Sprintf("cltcalc_%s_%s.%s", outcome.Calculator, time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// ExtensionFor returns the file extension used when saving a formatter's output
func ExtensionFor(f Formatter) string {
	switch f.Name() {
	case "json", "json-compact":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}
