package calculation

import (
	"fmt"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// unemploymentReasons lists the dismissal reasons that grant the benefit
var unemploymentReasons = map[domain.TerminationCategory]bool{
	domain.TerminationNoCause:           true,
	domain.TerminationIndirectDismissal: true,
	domain.TerminationContractEnd:       true,
}

// ParcelValue applies the benefit formula to an average salary: BaseRate up
// to ThresholdMultiplier x minimum wage, ExcessRate above it, capped at the
// ceiling and never below the minimum wage.
func (ce *CalculationEngine) ParcelValue(average decimal.Decimal) decimal.Decimal {
	rules := ce.Rules.Unemployment
	minimumWage := ce.Rules.MinimumWage
	threshold := minimumWage.Mul(rules.ThresholdMultiplier)

	var value decimal.Decimal
	if average.LessThanOrEqual(threshold) {
		value = average.Mul(rules.BaseRate)
	} else {
		value = threshold.Mul(rules.BaseRate).Add(average.Sub(threshold).Mul(rules.ExcessRate))
	}

	value = decimal.Min(value, rules.Ceiling)
	value = decimal.Max(value, minimumWage)
	return money.RoundCurrency(value)
}

// CalculateUnemployment evaluates every eligibility condition, collecting all
// disqualification reasons, and builds the payment schedule when eligible.
// Ineligibility is a result, never an error.
func (ce *CalculationEngine) CalculateUnemployment(input domain.UnemploymentInput) *domain.UnemploymentResult {
	rules := ce.Rules.Unemployment
	required := rules.RequiredMonths(input.PreviousRequests)

	average := input.AverageSalary
	if len(input.LastSalaries) > 0 {
		average = decimal.Avg(input.LastSalaries[0], input.LastSalaries[1:]...)
	}
	average = money.RoundCurrency(average)

	result := &domain.UnemploymentResult{
		Input:          input,
		Reasons:        []string{},
		RequiredMonths: required,
		AverageSalary:  average,
		ParcelValue:    decimal.Zero,
		TotalBenefit:   decimal.Zero,
		Parcels:        []domain.Parcel{},
		Details: domain.Details{
			LegalBasis: legal(legalUnemployment),
		},
	}

	if !input.HasFormalRegistration {
		result.Reasons = append(result.Reasons, "Não possui vínculo formal (carteira assinada)")
	}
	if !unemploymentReasons[input.DismissalReason] {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Modalidade de desligamento não dá direito ao benefício: %s", input.DismissalReason.Label()))
	}
	if input.MonthsWorked < required {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Tempo de trabalho insuficiente: %d meses trabalhados, mínimo de %d meses para a %dª solicitação",
				input.MonthsWorked, required, requestOrdinal(input.PreviousRequests)))
	}

	d := &result.Details
	d.AddFormula("Carência", fmt.Sprintf("%d solicitação(ões) anterior(es) => mínimo de %d meses", input.PreviousRequests, required))

	if len(result.Reasons) > 0 {
		d.AddNote("Benefício não devido; veja os motivos listados.")
		ce.Logger.Debugf("unemployment: ineligible (%d reasons)", len(result.Reasons))
		return result
	}

	result.IsEligible = true
	result.ParcelCount = rules.ParcelsFor(input.MonthsWorked)
	result.ParcelValue = ce.ParcelValue(average)
	result.TotalBenefit = money.RoundCurrency(result.ParcelValue.Mul(decimal.NewFromInt(int64(result.ParcelCount))))

	start := dateutil.Normalize(input.CalculationDate)
	for i := 1; i <= result.ParcelCount; i++ {
		result.Parcels = append(result.Parcels, domain.Parcel{
			Index:    i,
			Amount:   result.ParcelValue,
			DueMonth: dateutil.MonthLabel(dateutil.StartOfMonth(start).AddDate(0, i, 0)),
		})
	}

	ce.describeParcel(d, average, result)
	ce.Logger.Debugf("unemployment: parcels=%d value=%s", result.ParcelCount, result.ParcelValue)
	return result
}

func (ce *CalculationEngine) describeParcel(d *domain.Details, average decimal.Decimal, result *domain.UnemploymentResult) {
	rules := ce.Rules.Unemployment
	threshold := money.RoundCurrency(ce.Rules.MinimumWage.Mul(rules.ThresholdMultiplier))

	d.AddFormula("Média salarial", brl(average))
	if average.LessThanOrEqual(threshold) {
		d.AddFormula("Valor da parcela", fmt.Sprintf("%s x %s = %s (limites: mínimo %s, teto %s)",
			brl(average), pct(rules.BaseRate), brl(result.ParcelValue), brl(ce.Rules.MinimumWage), brl(rules.Ceiling)))
	} else {
		d.AddFormula("Valor da parcela", fmt.Sprintf("%s x %s + (%s - %s) x %s = %s (teto %s)",
			brl(threshold), pct(rules.BaseRate), brl(average), brl(threshold), pct(rules.ExcessRate),
			brl(result.ParcelValue), brl(rules.Ceiling)))
	}
	d.AddFormula("Número de parcelas", fmt.Sprintf("%d meses trabalhados => %d parcelas", result.Input.MonthsWorked, result.ParcelCount))
	d.AddFormula("Total do benefício", fmt.Sprintf("%d x %s = %s", result.ParcelCount, brl(result.ParcelValue), brl(result.TotalBenefit)))
}

func requestOrdinal(previous int) int {
	if previous < 0 {
		return 1
	}
	return previous + 1
}
