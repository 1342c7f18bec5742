// Package tuimsg holds the messages scenes send to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// CalculatorSelectedMsg signals a calculator was picked from the list
type CalculatorSelectedMsg struct {
	Calculator domain.CalculatorKind
}

// SubmitRequestMsg carries a request built from the form
type SubmitRequestMsg struct {
	Request *domain.CalculationRequest
}

// BackMsg asks the root model to leave the current scene
type BackMsg struct{}
