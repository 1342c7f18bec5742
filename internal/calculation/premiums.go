package calculation

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

const nonCumulativeNote = "Os adicionais de periculosidade e insalubridade não são cumuláveis; " +
	"o empregado deve optar pelo mais vantajoso (CLT, art. 193, §2º)."

// premiumRule binds a premium calculator to its base and rate
type premiumRule struct {
	kind       domain.PremiumKind
	calculator domain.CalculatorKind
	label      string
	base       decimal.Decimal
	baseLabel  string
	rate       decimal.Decimal
	legalBasis []string
	notes      []string
}

// CalculateNightShift computes the night-shift premium over the worker's salary
func (ce *CalculationEngine) CalculateNightShift(input domain.PremiumInput) (*domain.PremiumResult, error) {
	shift := input.NightShiftType
	if shift == "" {
		shift = domain.NightShiftUrban
	}
	if !shift.IsValid() {
		return nil, newCalcError(domain.CalculatorNightShift, "night_shift_type", "unknown shift type %q", shift)
	}

	label := "Adicional noturno urbano"
	if shift == domain.NightShiftRural {
		label = "Adicional noturno rural"
	}
	return ce.calculatePremium(input, premiumRule{
		kind:       domain.PremiumNightShift,
		calculator: domain.CalculatorNightShift,
		label:      label,
		base:       input.BaseSalary,
		baseLabel:  "salário contratual",
		rate:       ce.Rules.Premiums.NightShiftRate(shift),
		legalBasis: legalNightShift,
	})
}

// CalculateHazardPay computes the hazardous-duty premium over the worker's salary
func (ce *CalculationEngine) CalculateHazardPay(input domain.PremiumInput) (*domain.PremiumResult, error) {
	return ce.calculatePremium(input, premiumRule{
		kind:       domain.PremiumHazardous,
		calculator: domain.CalculatorHazardous,
		label:      "Adicional de periculosidade",
		base:       input.BaseSalary,
		baseLabel:  "salário contratual",
		rate:       ce.Rules.Premiums.Hazardous,
		legalBasis: legalHazardous,
		notes:      []string{nonCumulativeNote},
	})
}

// CalculateUnhealthyPay computes the unhealthy-duty premium. Unlike the other
// premiums its base is the national minimum wage, not the worker's salary.
func (ce *CalculationEngine) CalculateUnhealthyPay(input domain.PremiumInput) (*domain.PremiumResult, error) {
	grade := input.UnhealthyGrade
	if grade == "" {
		grade = domain.UnhealthyMinimum
	}
	if !grade.IsValid() {
		return nil, newCalcError(domain.CalculatorUnhealthy, "unhealthy_grade", "unknown grade %q", grade)
	}

	return ce.calculatePremium(input, premiumRule{
		kind:       domain.PremiumUnhealthy,
		calculator: domain.CalculatorUnhealthy,
		label:      "Adicional de insalubridade (" + grade.Label() + ")",
		base:       ce.Rules.MinimumWage,
		baseLabel:  "salário mínimo nacional",
		rate:       ce.Rules.Premiums.UnhealthyRate(grade),
		legalBasis: legalUnhealthy,
		notes:      []string{nonCumulativeNote},
	})
}

func (ce *CalculationEngine) calculatePremium(input domain.PremiumInput, rule premiumRule) (*domain.PremiumResult, error) {
	if input.BaseSalary.IsNegative() {
		return nil, newCalcError(rule.calculator, "base_salary", "must not be negative")
	}
	if input.ExposedHours.IsNegative() || input.TotalHours.IsNegative() {
		return nil, newCalcError(rule.calculator, "hours", "must not be negative")
	}
	if !input.Mode.IsValid() {
		return nil, newCalcError(rule.calculator, "mode", "unknown calculation mode %q", input.Mode)
	}

	result := &domain.PremiumResult{
		Input:            input,
		Kind:             rule.kind,
		CalculationBase:  money.RoundCurrency(rule.base),
		Rate:             decimal.Zero,
		Proportion:       decimal.Zero,
		Premium:          decimal.Zero,
		TotalWithPremium: money.RoundCurrency(input.BaseSalary),
		Details: domain.Details{
			LegalBasis: legal(rule.legalBasis),
		},
	}

	if !input.Applies {
		result.Details.AddNote(rule.label + " não se aplica: o trabalhador não está exposto à condição.")
		result.Details.AddFormula(rule.label, "não aplicável = "+brl(decimal.Zero))
		return result, nil
	}

	if input.TotalHours.IsPositive() && input.ExposedHours.GreaterThan(input.TotalHours) {
		return nil, newCalcError(rule.calculator, "exposed_hours",
			"exposed hours (%s) exceed total hours in the period (%s)", input.ExposedHours, input.TotalHours)
	}

	proportional := input.Mode == domain.PremiumModeProportional
	if !proportional && input.TotalHours.IsPositive() && input.ExposedHours.LessThan(input.TotalHours) {
		proportional = true
		result.Details.AddNote("Exposição parcial no período: adicional calculado de forma proporcional às horas expostas.")
	}

	proportion := one
	premium := rule.base.Mul(rule.rate)
	if proportional {
		if !input.TotalHours.IsPositive() {
			return nil, newCalcError(rule.calculator, "total_hours", "must be positive for proportional calculation")
		}
		proportion = input.ExposedHours.Div(input.TotalHours)
		premium = rule.base.Mul(rule.rate).Mul(input.ExposedHours).Div(input.TotalHours)
	}

	result.Applied = true
	result.Rate = money.Percent(rule.rate)
	result.Proportion = proportion.Round(4)
	result.Premium = money.RoundCurrency(premium)
	result.TotalWithPremium = money.RoundCurrency(input.BaseSalary.Add(result.Premium))

	if proportional {
		result.Details.AddFormula(rule.label, fmt.Sprintf("%s (%s) x %s x (%s h / %s h) = %s",
			brl(rule.base), rule.baseLabel, pct(rule.rate), input.ExposedHours, input.TotalHours, brl(result.Premium)))
	} else {
		result.Details.AddFormula(rule.label, fmt.Sprintf("%s (%s) x %s = %s",
			brl(rule.base), rule.baseLabel, pct(rule.rate), brl(result.Premium)))
	}
	result.Details.AddFormula("Remuneração com adicional", fmt.Sprintf("%s + %s = %s",
		brl(input.BaseSalary), brl(result.Premium), brl(result.TotalWithPremium)))
	for _, note := range rule.notes {
		result.Details.AddNote(note)
	}

	ce.Logger.Debugf("%s: base=%s rate=%s proportion=%s premium=%s", rule.kind, rule.base, rule.rate, proportion, result.Premium)
	return result, nil
}
