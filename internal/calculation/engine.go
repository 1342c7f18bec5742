package calculation

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// Logger is the logging surface the engine writes debug traces to
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{}) {}
func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Warnf(format string, args ...interface{})  {}
func (NopLogger) Errorf(format string, args ...interface{}) {}

// CalculationEngine runs every labor calculator against one rule set.
// Calculators only read Rules, so a configured engine is safe for concurrent use.
type CalculationEngine struct {
	Rules  domain.RegulatoryConfig
	Logger Logger
}

// NewCalculationEngine creates an engine with the built-in rule set
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultRegulatoryConfig())
}

// NewCalculationEngineWithConfig creates an engine with a loaded rule set
func NewCalculationEngineWithConfig(rules domain.RegulatoryConfig) *CalculationEngine {
	return &CalculationEngine{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger.
// Call it before sharing the engine across goroutines.
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = logger
}

// Run dispatches a request to the calculator it names
func (ce *CalculationEngine) Run(req *domain.CalculationRequest) (*domain.CalculationOutcome, error) {
	if req == nil {
		return nil, fmt.Errorf("calculation request is nil")
	}

	kind := req.Calculator
	ce.Logger.Debugf("dispatching %s calculation", kind)
	outcome := &domain.CalculationOutcome{Calculator: kind}

	var err error
	switch kind {
	case domain.CalculatorWithholding:
		if req.Withholding == nil {
			return nil, missingSection(kind, "withholding")
		}
		outcome.Withholding, err = ce.CalculateWithholding(*req.Withholding)
	case domain.CalculatorNightShift:
		if req.Premium == nil {
			return nil, missingSection(kind, "premium")
		}
		outcome.Premium, err = ce.CalculateNightShift(*req.Premium)
	case domain.CalculatorHazardous:
		if req.Premium == nil {
			return nil, missingSection(kind, "premium")
		}
		outcome.Premium, err = ce.CalculateHazardPay(*req.Premium)
	case domain.CalculatorUnhealthy:
		if req.Premium == nil {
			return nil, missingSection(kind, "premium")
		}
		outcome.Premium, err = ce.CalculateUnhealthyPay(*req.Premium)
	case domain.CalculatorVacation:
		if req.Vacation == nil {
			return nil, missingSection(kind, "vacation")
		}
		outcome.Vacation, err = ce.CalculateVacation(*req.Vacation)
	case domain.CalculatorThirteenth:
		if req.Thirteenth == nil {
			return nil, missingSection(kind, "thirteenth")
		}
		outcome.Thirteenth, err = ce.CalculateThirteenth(*req.Thirteenth)
	case domain.CalculatorThirteenthAdvance:
		if req.Thirteenth == nil {
			return nil, missingSection(kind, "thirteenth")
		}
		outcome.ThirteenthInstallment, err = ce.CalculateThirteenthAdvance(*req.Thirteenth)
	case domain.CalculatorThirteenthComplement:
		if req.Thirteenth == nil {
			return nil, missingSection(kind, "thirteenth")
		}
		outcome.ThirteenthInstallment, err = ce.CalculateThirteenthComplement(*req.Thirteenth)
	case domain.CalculatorFGTS:
		if req.FGTS == nil {
			return nil, missingSection(kind, "fgts")
		}
		outcome.FGTS, err = ce.CalculateFGTS(*req.FGTS)
	case domain.CalculatorRescission:
		if req.Rescission == nil {
			return nil, missingSection(kind, "rescission")
		}
		outcome.Rescission, err = ce.CalculateRescission(*req.Rescission)
	case domain.CalculatorUnemployment:
		if req.Unemployment == nil {
			return nil, missingSection(kind, "unemployment")
		}
		outcome.Unemployment = ce.CalculateUnemployment(*req.Unemployment)
	default:
		return nil, fmt.Errorf("unknown calculator %q", kind)
	}

	if err != nil {
		ce.Logger.Warnf("%s calculation rejected: %v", kind, err)
		return nil, err
	}
	return outcome, nil
}

func missingSection(kind domain.CalculatorKind, section string) error {
	return newCalcError(kind, section, "input section is missing")
}
