package calculation

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// CalculateINSS walks the INSS table from the lowest bracket, taxing the slice
// of the base that falls inside each bracket at that bracket's rate. Bases
// above the top bracket are capped at the table's maximum contribution.
func (ce *CalculationEngine) CalculateINSS(base decimal.Decimal) domain.INSSResult {
	result := domain.INSSResult{
		Base:          money.RoundCurrency(base),
		Contribution:  decimal.Zero,
		EffectiveRate: decimal.Zero,
		Brackets:      []domain.BracketPortion{},
	}
	if !base.IsPositive() {
		return result
	}

	table := ce.Rules.INSS.Brackets
	remaining := base
	previousMax := decimal.Zero
	total := decimal.Zero

	for i, bracket := range table {
		if !remaining.IsPositive() {
			break
		}

		width := remaining
		if !bracket.IsOpen() {
			width = bracket.Max.Sub(previousMax)
		}
		portion := decimal.Min(remaining, width)
		amount := money.RoundCurrency(portion.Mul(bracket.Rate))

		result.Brackets = append(result.Brackets, domain.BracketPortion{
			Index:   i,
			From:    bracket.Min,
			To:      previousMax.Add(portion),
			Rate:    money.Percent(bracket.Rate),
			Portion: money.RoundCurrency(portion),
			Amount:  amount,
		})

		total = total.Add(amount)
		remaining = remaining.Sub(portion)
		if !bracket.IsOpen() {
			previousMax = bracket.Max
		}
	}

	if ceiling, capped := table.Ceiling(); capped && base.GreaterThanOrEqual(ceiling) {
		result.AtCeiling = true
	}

	result.Contribution = money.RoundCurrency(total)
	result.EffectiveRate = money.Percent(result.Contribution.Div(base))
	return result
}

// CalculateIRRF computes monthly income tax: the base is reduced by the
// per-dependent deduction and otherDeductions, then taxed at the single
// bracket containing it minus that bracket's fixed deduction.
func (ce *CalculationEngine) CalculateIRRF(base decimal.Decimal, dependents int, otherDeductions decimal.Decimal) domain.IRRFResult {
	if dependents < 0 {
		dependents = 0
	}
	dependentDeduction := money.RoundCurrency(ce.Rules.IRRF.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents))))

	result := domain.IRRFResult{
		GrossBase:          money.RoundCurrency(base),
		DependentDeduction: dependentDeduction,
		OtherDeductions:    money.RoundCurrency(otherDeductions),
		TaxableBase:        decimal.Zero,
		Rate:               decimal.Zero,
		FixedDeduction:     decimal.Zero,
		Tax:                decimal.Zero,
	}

	taxable := base.Sub(dependentDeduction).Sub(otherDeductions)
	if !taxable.IsPositive() {
		result.Exempt = true
		return result
	}

	bracket, idx := ce.Rules.IRRF.Brackets.Find(taxable)
	result.TaxableBase = money.RoundCurrency(taxable)
	result.BracketIndex = idx
	result.Rate = money.Percent(bracket.Rate)
	result.FixedDeduction = bracket.Deduction
	result.Tax = money.RoundCurrency(money.MaxZero(taxable.Mul(bracket.Rate).Sub(bracket.Deduction)))
	result.Exempt = result.Tax.IsZero()
	return result
}

// CalculateWithholding applies INSS and then IRRF, with the INSS contribution
// deducted from the income-tax base.
func (ce *CalculationEngine) CalculateWithholding(input domain.WithholdingInput) (*domain.WithholdingResult, error) {
	if input.GrossSalary.IsNegative() {
		return nil, newCalcError(domain.CalculatorWithholding, "gross_salary", "must not be negative")
	}
	if input.Dependents < 0 {
		return nil, newCalcError(domain.CalculatorWithholding, "dependents", "must not be negative")
	}

	inss := ce.CalculateINSS(input.GrossSalary)
	irrf := ce.CalculateIRRF(input.GrossSalary, input.Dependents, inss.Contribution.Add(input.OtherDeductions))

	total := inss.Contribution.Add(irrf.Tax)
	result := &domain.WithholdingResult{
		Input:           input,
		INSS:            inss,
		IRRF:            irrf,
		TotalDeductions: total,
		NetSalary:       money.RoundCurrency(money.MaxZero(input.GrossSalary.Sub(total))),
		Details: domain.Details{
			LegalBasis: legal(legalINSS, legalIRRF),
		},
	}

	describeINSS(&result.Details, inss)
	describeIRRF(&result.Details, irrf)
	result.Details.AddFormula("Salário líquido", fmt.Sprintf("%s - %s - %s = %s",
		brl(input.GrossSalary), brl(inss.Contribution), brl(irrf.Tax), brl(result.NetSalary)))

	ce.Logger.Debugf("withholding: gross=%s inss=%s irrf=%s", input.GrossSalary, inss.Contribution, irrf.Tax)
	return result, nil
}

// describeINSS appends one formula line per bracket taxed
func describeINSS(details *domain.Details, inss domain.INSSResult) {
	if len(inss.Brackets) == 0 {
		details.AddFormula("INSS", "base zerada, sem contribuição")
		return
	}
	for _, b := range inss.Brackets {
		details.AddFormula(fmt.Sprintf("INSS faixa %d", b.Index+1),
			fmt.Sprintf("%s x %s = %s", brl(b.Portion), money.FormatPercent(b.Rate), brl(b.Amount)))
	}
	total := fmt.Sprintf("%s (alíquota efetiva %s)", brl(inss.Contribution), money.FormatPercent(inss.EffectiveRate))
	if inss.AtCeiling {
		total += ", limitado ao teto"
	}
	details.AddFormula("INSS total", total)
}

func describeIRRF(details *domain.Details, irrf domain.IRRFResult) {
	base := fmt.Sprintf("%s - %s (dependentes) - %s (deduções) = %s",
		brl(irrf.GrossBase), brl(irrf.DependentDeduction), brl(irrf.OtherDeductions), brl(irrf.TaxableBase))
	details.AddFormula("Base IRRF", base)
	if irrf.Exempt {
		details.AddFormula("IRRF", "isento")
		return
	}
	details.AddFormula("IRRF", fmt.Sprintf("%s x %s - %s = %s",
		brl(irrf.TaxableBase), money.FormatPercent(irrf.Rate), brl(irrf.FixedDeduction), brl(irrf.Tax)))
}
