package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// EarnedVacationDays returns the vacation days accrued between admission and
// reference: a full period per completed year of service plus 2.5 days per
// month (15-day rule) since the last anniversary.
func (ce *CalculationEngine) EarnedVacationDays(admission, reference time.Time) int {
	perPeriod := ce.Rules.Vacation.DaysPerPeriod
	years := dateutil.CompleteYears(admission, reference)
	months := dateutil.ProportionalMonths(dateutil.LastAnniversary(admission, reference), reference)
	if months > 12 {
		months = 12
	}
	return years*perPeriod + months*perPeriod/12
}

// CalculateVacation computes vacation pay with its one-third bonus, optional
// sold days ("abono pecuniário") with their own bonus, and withholding over
// the combined gross.
func (ce *CalculationEngine) CalculateVacation(input domain.VacationInput) (*domain.VacationResult, error) {
	const kind = domain.CalculatorVacation
	rules := ce.Rules.Vacation

	if !input.Salary.IsPositive() {
		return nil, newCalcError(kind, "salary", "must be positive")
	}
	if input.VacationStartDate.Before(input.AdmissionDate) {
		return nil, newCalcError(kind, "vacation_start_date", "cannot precede the admission date")
	}
	if input.DaysRequested < 0 || input.DaysSold < 0 || input.DaysAlreadyTaken < 0 {
		return nil, newCalcError(kind, "days", "day counts must not be negative")
	}
	if input.DaysRequested+input.DaysSold == 0 {
		return nil, newCalcError(kind, "days_requested", "at least one vacation day must be requested or sold")
	}
	if input.DaysSold > rules.MaxSoldDays {
		return nil, newCalcError(kind, "days_sold", "at most %d days can be sold, got %d", rules.MaxSoldDays, input.DaysSold)
	}
	if input.DaysRequested+input.DaysSold > rules.DaysPerPeriod {
		return nil, newCalcError(kind, "days_requested", "requested plus sold days (%d) exceed %d",
			input.DaysRequested+input.DaysSold, rules.DaysPerPeriod)
	}

	earned := ce.EarnedVacationDays(input.AdmissionDate, input.VacationStartDate)
	available := earned - input.DaysAlreadyTaken
	if available < 0 {
		available = 0
	}
	if input.DaysRequested+input.DaysSold > available {
		return nil, newCalcError(kind, "days_requested", "requested %d days but only %d are available",
			input.DaysRequested+input.DaysSold, available)
	}

	remuneration := input.Salary.Add(input.AverageVariablePay)
	dailyRate := remuneration.Div(thirty)
	requested := decimal.NewFromInt(int64(input.DaysRequested))
	sold := decimal.NewFromInt(int64(input.DaysSold))

	vacationPay := money.RoundCurrency(dailyRate.Mul(requested))
	vacationBonus := money.RoundCurrency(vacationPay.Div(three))
	soldPay := money.RoundCurrency(dailyRate.Mul(sold))
	soldBonus := money.RoundCurrency(soldPay.Div(three))
	gross := money.Sum(vacationPay, vacationBonus, soldPay, soldBonus)

	inss := ce.CalculateINSS(gross)
	irrf := ce.CalculateIRRF(gross, input.Dependents, inss.Contribution)
	deductions := inss.Contribution.Add(irrf.Tax)

	result := &domain.VacationResult{
		Input:           input,
		EarnedDays:      earned,
		AvailableDays:   available,
		DailyRate:       money.RoundCurrency(dailyRate),
		VacationPay:     vacationPay,
		VacationBonus:   vacationBonus,
		SoldDaysPay:     soldPay,
		SoldDaysBonus:   soldBonus,
		GrossTotal:      gross,
		INSS:            inss,
		IRRF:            irrf,
		TotalDeductions: deductions,
		NetTotal:        money.RoundCurrency(money.MaxZero(gross.Sub(deductions))),
		Details: domain.Details{
			ServiceTime: dateutil.ServiceTimeText(input.AdmissionDate, input.VacationStartDate),
			LegalBasis:  legal(legalVacation, legalINSS, legalIRRF),
		},
	}

	d := &result.Details
	d.AddFormula("Dias adquiridos", fmt.Sprintf("%d dias - %d já gozados = %d disponíveis", earned, input.DaysAlreadyTaken, available))
	d.AddFormula("Valor diário", fmt.Sprintf("%s / 30 = %s", brl(remuneration), brl(result.DailyRate)))
	d.AddFormula("Férias", fmt.Sprintf("%s x %d dias = %s", brl(result.DailyRate), input.DaysRequested, brl(vacationPay)))
	d.AddFormula("1/3 constitucional", fmt.Sprintf("%s / 3 = %s", brl(vacationPay), brl(vacationBonus)))
	if input.DaysSold > 0 {
		d.AddFormula("Abono pecuniário", fmt.Sprintf("%s x %d dias = %s", brl(result.DailyRate), input.DaysSold, brl(soldPay)))
		d.AddFormula("1/3 sobre abono", fmt.Sprintf("%s / 3 = %s", brl(soldPay), brl(soldBonus)))
	}
	d.AddFormula("Total bruto", brl(gross))
	describeINSS(d, inss)
	describeIRRF(d, irrf)
	if input.AverageVariablePay.IsPositive() {
		d.AddNote("Média de remuneração variável de " + brl(input.AverageVariablePay) + " incluída na base.")
	}

	ce.Logger.Debugf("vacation: earned=%d requested=%d sold=%d gross=%s", earned, input.DaysRequested, input.DaysSold, gross)
	return result, nil
}
