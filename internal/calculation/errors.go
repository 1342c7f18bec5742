package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// ErrInvalidInput is the sentinel every business-rule violation unwraps to.
// Use errors.Is(err, ErrInvalidInput) to tell rule violations from other failures.
var ErrInvalidInput = errors.New("invalid calculation input")

// CalculationError reports a business-rule violation for one calculator
type CalculationError struct {
	Calculator domain.CalculatorKind
	Field      string
	Message    string
}

func (e *CalculationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Calculator, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Calculator, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *CalculationError) Unwrap() error {
	return ErrInvalidInput
}

func newCalcError(calculator domain.CalculatorKind, field, format string, args ...interface{}) error {
	return &CalculationError{
		Calculator: calculator,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
	}
}
