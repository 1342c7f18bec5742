package calculation

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// ThirteenthMonths returns the eligible months: the explicit count when given,
// otherwise the months with at least 15 days worked from the later of the
// admission date and January 1st up to the reference date.
func (ce *CalculationEngine) ThirteenthMonths(kind domain.CalculatorKind, input domain.ThirteenthInput) (int, error) {
	if input.MonthsWorked != nil {
		months := *input.MonthsWorked
		if months < 0 || months > 12 {
			return 0, newCalcError(kind, "months_worked", "must be between 0 and 12, got %d", months)
		}
		return months, nil
	}

	if input.ReferenceDate.IsZero() {
		return 0, newCalcError(kind, "reference_date", "is required when months_worked is not given")
	}
	if input.ReferenceDate.Before(input.AdmissionDate) {
		return 0, newCalcError(kind, "reference_date", "cannot precede the admission date")
	}

	start := dateutil.StartOfYear(input.ReferenceDate)
	if input.AdmissionDate.After(start) {
		start = input.AdmissionDate
	}
	months := dateutil.MonthsWithFifteenDays(start, input.ReferenceDate)
	if months > 12 {
		months = 12
	}
	return months, nil
}

// fullThirteenth returns (salary + variable average) / 12 x months
func (ce *CalculationEngine) fullThirteenth(kind domain.CalculatorKind, input domain.ThirteenthInput) (int, decimal.Decimal, error) {
	if !input.Salary.IsPositive() {
		return 0, decimal.Zero, newCalcError(kind, "salary", "must be positive")
	}
	if input.AdvancePaid.IsNegative() {
		return 0, decimal.Zero, newCalcError(kind, "advance_paid", "must not be negative")
	}
	months, err := ce.ThirteenthMonths(kind, input)
	if err != nil {
		return 0, decimal.Zero, err
	}
	remuneration := input.Salary.Add(input.AverageVariablePay)
	gross := money.RoundCurrency(remuneration.Mul(decimal.NewFromInt(int64(months))).Div(twelve))
	return months, gross, nil
}

// CalculateThirteenth computes the full thirteenth salary with INSS, IRRF and
// any advance already paid deducted.
func (ce *CalculationEngine) CalculateThirteenth(input domain.ThirteenthInput) (*domain.ThirteenthResult, error) {
	months, gross, err := ce.fullThirteenth(domain.CalculatorThirteenth, input)
	if err != nil {
		return nil, err
	}

	advance := money.RoundCurrency(decimal.Min(input.AdvancePaid, gross))
	inss := ce.CalculateINSS(gross)
	irrf := ce.CalculateIRRF(gross, input.Dependents, inss.Contribution)
	deductions := money.Sum(advance, inss.Contribution, irrf.Tax)

	result := &domain.ThirteenthResult{
		Input:            input,
		EligibleMonths:   months,
		GrossTotal:       gross,
		AdvanceDeduction: advance,
		INSS:             inss,
		IRRF:             irrf,
		TotalDeductions:  deductions,
		NetTotal:         money.RoundCurrency(money.MaxZero(gross.Sub(deductions))),
		Details: domain.Details{
			LegalBasis: legal(legalThirteenth, legalINSS, legalIRRF),
		},
	}
	if !input.AdmissionDate.IsZero() && !input.ReferenceDate.IsZero() {
		result.Details.ServiceTime = dateutil.ServiceTimeText(input.AdmissionDate, input.ReferenceDate)
	}

	d := &result.Details
	d.AddFormula("13º salário", fmt.Sprintf("%s / 12 x %d meses = %s", brl(input.Salary.Add(input.AverageVariablePay)), months, brl(gross)))
	if advance.IsPositive() {
		d.AddFormula("Adiantamento", fmt.Sprintf("%s já pago (1ª parcela)", brl(advance)))
	}
	describeINSS(d, inss)
	describeIRRF(d, irrf)
	if input.AdvancePaid.GreaterThan(gross) {
		d.AddNote("Adiantamento informado excede o 13º devido; desconto limitado ao valor bruto.")
	}
	if input.MonthsWorked == nil {
		d.AddNote("Meses apurados pela regra dos 15 dias trabalhados no mês.")
	}

	ce.Logger.Debugf("thirteenth: months=%d gross=%s advance=%s", months, gross, advance)
	return result, nil
}

// CalculateThirteenthAdvance computes the first installment: half of the
// thirteenth salary, paid without withholding.
func (ce *CalculationEngine) CalculateThirteenthAdvance(input domain.ThirteenthInput) (*domain.ThirteenthInstallmentResult, error) {
	months, full, err := ce.fullThirteenth(domain.CalculatorThirteenthAdvance, input)
	if err != nil {
		return nil, err
	}

	installment := money.RoundCurrency(full.Div(two))
	result := &domain.ThirteenthInstallmentResult{
		Input:           input,
		Installment:     1,
		EligibleMonths:  months,
		FullThirteenth:  full,
		GrossTotal:      installment,
		AdvancePaid:     decimal.Zero,
		INSS:            ce.CalculateINSS(decimal.Zero),
		IRRF:            ce.CalculateIRRF(decimal.Zero, 0, decimal.Zero),
		TotalDeductions: decimal.Zero,
		NetTotal:        installment,
		Details: domain.Details{
			LegalBasis: legal(legalThirteenth),
		},
	}
	result.Details.AddFormula("13º integral", fmt.Sprintf("%s / 12 x %d meses = %s", brl(input.Salary.Add(input.AverageVariablePay)), months, brl(full)))
	result.Details.AddFormula("1ª parcela", fmt.Sprintf("%s / 2 = %s", brl(full), brl(installment)))
	result.Details.AddNote("A 1ª parcela não sofre descontos de INSS e IRRF; os encargos incidem na 2ª parcela.")
	return result, nil
}

// CalculateThirteenthComplement computes the second installment: the full
// thirteenth less the advance, with INSS and IRRF over the full amount.
// Without an informed advance, half of the full amount is assumed.
func (ce *CalculationEngine) CalculateThirteenthComplement(input domain.ThirteenthInput) (*domain.ThirteenthInstallmentResult, error) {
	months, full, err := ce.fullThirteenth(domain.CalculatorThirteenthComplement, input)
	if err != nil {
		return nil, err
	}

	advance := input.AdvancePaid
	if advance.IsZero() {
		advance = full.Div(two)
	}
	advance = money.RoundCurrency(decimal.Min(advance, full))
	installment := full.Sub(advance)

	inss := ce.CalculateINSS(full)
	irrf := ce.CalculateIRRF(full, input.Dependents, inss.Contribution)
	deductions := inss.Contribution.Add(irrf.Tax)

	result := &domain.ThirteenthInstallmentResult{
		Input:           input,
		Installment:     2,
		EligibleMonths:  months,
		FullThirteenth:  full,
		GrossTotal:      installment,
		AdvancePaid:     advance,
		INSS:            inss,
		IRRF:            irrf,
		TotalDeductions: deductions,
		NetTotal:        money.RoundCurrency(money.MaxZero(installment.Sub(deductions))),
		Details: domain.Details{
			LegalBasis: legal(legalThirteenth, legalINSS, legalIRRF),
		},
	}

	d := &result.Details
	d.AddFormula("13º integral", fmt.Sprintf("%s / 12 x %d meses = %s", brl(input.Salary.Add(input.AverageVariablePay)), months, brl(full)))
	d.AddFormula("2ª parcela", fmt.Sprintf("%s - %s (adiantamento) = %s", brl(full), brl(advance), brl(installment)))
	describeINSS(d, inss)
	describeIRRF(d, irrf)
	return result, nil
}
