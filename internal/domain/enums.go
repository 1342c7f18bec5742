package domain

// TerminationCategory identifies how an employment contract ended
type TerminationCategory string

const (
	TerminationNoCause           TerminationCategory = "no_cause"
	TerminationForCause          TerminationCategory = "for_cause"
	TerminationResignation       TerminationCategory = "resignation"
	TerminationMutualAgreement   TerminationCategory = "mutual_agreement"
	TerminationContractEnd       TerminationCategory = "contract_end"
	TerminationIndirectDismissal TerminationCategory = "indirect_dismissal"
)

// AllTerminationCategories lists every category in display order
var AllTerminationCategories = []TerminationCategory{
	TerminationNoCause,
	TerminationForCause,
	TerminationResignation,
	TerminationMutualAgreement,
	TerminationContractEnd,
	TerminationIndirectDismissal,
}

// IsValid reports whether c is a known category
func (c TerminationCategory) IsValid() bool {
	for _, known := range AllTerminationCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the Portuguese description of the category
func (c TerminationCategory) Label() string {
	switch c {
	case TerminationNoCause:
		return "Dispensa sem justa causa"
	case TerminationForCause:
		return "Dispensa por justa causa"
	case TerminationResignation:
		return "Pedido de demissão"
	case TerminationMutualAgreement:
		return "Acordo entre as partes"
	case TerminationContractEnd:
		return "Término de contrato por prazo determinado"
	case TerminationIndirectDismissal:
		return "Rescisão indireta"
	default:
		return string(c)
	}
}

// NightShiftType selects the night-shift premium rate
type NightShiftType string

const (
	NightShiftUrban NightShiftType = "urban"
	NightShiftRural NightShiftType = "rural"
)

// IsValid reports whether t is a known night-shift type
func (t NightShiftType) IsValid() bool {
	return t == NightShiftUrban || t == NightShiftRural
}

// UnhealthyGrade selects the unhealthy-duty premium rate
type UnhealthyGrade string

const (
	UnhealthyMinimum UnhealthyGrade = "minimum"
	UnhealthyMedium  UnhealthyGrade = "medium"
	UnhealthyMaximum UnhealthyGrade = "maximum"
)

// IsValid reports whether g is a known grade
func (g UnhealthyGrade) IsValid() bool {
	return g == UnhealthyMinimum || g == UnhealthyMedium || g == UnhealthyMaximum
}

// Label returns the Portuguese grade name
func (g UnhealthyGrade) Label() string {
	switch g {
	case UnhealthyMinimum:
		return "grau mínimo"
	case UnhealthyMedium:
		return "grau médio"
	case UnhealthyMaximum:
		return "grau máximo"
	default:
		return string(g)
	}
}

// PremiumMode selects between full-period and hour-proportional premiums
type PremiumMode string

const (
	PremiumModeFull         PremiumMode = "full"
	PremiumModeProportional PremiumMode = "proportional"
)

// IsValid reports whether m is a known mode (empty means full)
func (m PremiumMode) IsValid() bool {
	return m == "" || m == PremiumModeFull || m == PremiumModeProportional
}

// PremiumKind identifies one of the premium calculators
type PremiumKind string

const (
	PremiumNightShift PremiumKind = "night_shift"
	PremiumHazardous  PremiumKind = "hazardous"
	PremiumUnhealthy  PremiumKind = "unhealthy"
)

// CalculatorKind names a calculator reachable through a CalculationRequest
type CalculatorKind string

const (
	CalculatorRescission           CalculatorKind = "rescission"
	CalculatorVacation             CalculatorKind = "vacation"
	CalculatorThirteenth           CalculatorKind = "thirteenth"
	CalculatorThirteenthAdvance    CalculatorKind = "thirteenth_advance"
	CalculatorThirteenthComplement CalculatorKind = "thirteenth_complement"
	CalculatorFGTS                 CalculatorKind = "fgts"
	CalculatorNightShift           CalculatorKind = "night_shift"
	CalculatorHazardous            CalculatorKind = "hazardous"
	CalculatorUnhealthy            CalculatorKind = "unhealthy"
	CalculatorUnemployment         CalculatorKind = "unemployment"
	CalculatorWithholding          CalculatorKind = "withholding"
)

// AllCalculators lists every calculator kind
var AllCalculators = []CalculatorKind{
	CalculatorRescission,
	CalculatorVacation,
	CalculatorThirteenth,
	CalculatorThirteenthAdvance,
	CalculatorThirteenthComplement,
	CalculatorFGTS,
	CalculatorNightShift,
	CalculatorHazardous,
	CalculatorUnhealthy,
	CalculatorUnemployment,
	CalculatorWithholding,
}

// IsValid reports whether k is a known calculator
func (k CalculatorKind) IsValid() bool {
	for _, known := range AllCalculators {
		if k == known {
			return true
		}
	}
	return false
}

// Title returns the report title for the calculator
func (k CalculatorKind) Title() string {
	switch k {
	case CalculatorRescission:
		return "Rescisão Trabalhista"
	case CalculatorVacation:
		return "Férias"
	case CalculatorThirteenth:
		return "Décimo Terceiro Salário"
	case CalculatorThirteenthAdvance:
		return "Décimo Terceiro Salário - 1ª Parcela"
	case CalculatorThirteenthComplement:
		return "Décimo Terceiro Salário - 2ª Parcela"
	case CalculatorFGTS:
		return "FGTS"
	case CalculatorNightShift:
		return "Adicional Noturno"
	case CalculatorHazardous:
		return "Adicional de Periculosidade"
	case CalculatorUnhealthy:
		return "Adicional de Insalubridade"
	case CalculatorUnemployment:
		return "Seguro-Desemprego"
	case CalculatorWithholding:
		return "INSS e IRRF"
	default:
		return string(k)
	}
}
