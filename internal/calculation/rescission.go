package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// entitlement lists which rescission components a termination category pays
type entitlement struct {
	notice         bool
	halfNotice     bool
	fine           func(domain.FGTSRules) decimal.Decimal
	withdrawal     bool
	partialFGTS    bool // withdrawal limited to MutualWithdrawalShare
	unemploymentOK bool
}

func noFine(domain.FGTSRules) decimal.Decimal       { return decimal.Zero }
func fullFine(r domain.FGTSRules) decimal.Decimal   { return r.NoCauseFineRate }
func mutualFine(r domain.FGTSRules) decimal.Decimal { return r.MutualFineRate }

// entitlements maps every termination category to its components. Salary
// balance, vacation and thirteenth are paid in every category.
var entitlements = map[domain.TerminationCategory]entitlement{
	domain.TerminationNoCause: {
		notice: true, fine: fullFine, withdrawal: true, unemploymentOK: true,
	},
	domain.TerminationIndirectDismissal: {
		notice: true, fine: fullFine, withdrawal: true, unemploymentOK: true,
	},
	domain.TerminationMutualAgreement: {
		notice: true, halfNotice: true, fine: mutualFine, withdrawal: true, partialFGTS: true,
	},
	domain.TerminationForCause:    {fine: noFine},
	domain.TerminationResignation: {fine: noFine},
	domain.TerminationContractEnd: {fine: noFine},
}

// NoticeDays returns 30 days plus 3 per complete year of service, capped at 90
func (ce *CalculationEngine) NoticeDays(admission, dismissal time.Time) int {
	rules := ce.Rules.Notice
	days := rules.BaseDays + rules.DaysPerYear*dateutil.CompleteYears(admission, dismissal)
	if days > rules.MaxDays {
		return rules.MaxDays
	}
	return days
}

// CalculateRescission computes every amount due on termination for the
// input's category and reconciles gross, deductions and net.
func (ce *CalculationEngine) CalculateRescission(input domain.RescissionInput) (*domain.RescissionResult, error) {
	const kind = domain.CalculatorRescission

	if !input.Salary.IsPositive() {
		return nil, newCalcError(kind, "salary", "must be positive")
	}
	if input.DismissalDate.Before(input.AdmissionDate) {
		return nil, newCalcError(kind, "dismissal_date", "cannot precede the admission date")
	}
	rule, ok := entitlements[input.Category]
	if !ok {
		return nil, newCalcError(kind, "category", "unknown termination category %q", input.Category)
	}
	if input.AccruedVacationPeriods < 0 || input.PendingThirteenthMonths < 0 || input.PendingThirteenthMonths > 12 {
		return nil, newCalcError(kind, "pending", "accrued vacation periods must be >= 0 and pending thirteenth months between 0 and 12")
	}
	if input.FGTSBalance.IsNegative() || input.ThirteenthAdvancePaid.IsNegative() {
		return nil, newCalcError(kind, "balances", "must not be negative")
	}

	admission := dateutil.Normalize(input.AdmissionDate)
	dismissal := dateutil.Normalize(input.DismissalDate)
	remuneration := input.Salary.Add(input.AverageVariablePay)
	fgtsRules := ce.Rules.FGTS

	result := &domain.RescissionResult{Input: input}
	details := &result.Details

	// Salary balance for the days worked in the dismissal month
	monthStart := dateutil.StartOfMonth(dismissal)
	if admission.After(monthStart) {
		monthStart = admission
	}
	result.DaysWorkedInMonth = dateutil.ProportionalDays(monthStart, dismissal, 30)
	result.SalaryBalance = money.ProportionalValue(remuneration, result.DaysWorkedInMonth, 30)

	// Indemnified notice
	result.NoticePay = decimal.Zero
	if rule.notice {
		result.NoticeDays = ce.NoticeDays(admission, dismissal)
		notice := remuneration.Div(thirty).Mul(decimal.NewFromInt(int64(result.NoticeDays)))
		if rule.halfNotice {
			notice = notice.Div(two)
		}
		result.NoticePay = money.RoundCurrency(notice)
	}

	// Vacation: accrued full periods plus months since the last anniversary
	result.AccruedVacation = money.RoundCurrency(remuneration.Mul(decimal.NewFromInt(int64(input.AccruedVacationPeriods))))
	result.AccruedVacationBonus = money.RoundCurrency(result.AccruedVacation.Div(three))
	months := dateutil.ProportionalMonths(dateutil.LastAnniversary(admission, dismissal), dismissal)
	if months > 12 {
		months = 12
	}
	result.ProportionalVacationMonths = months
	result.ProportionalVacation = money.ProportionalValue(remuneration, months, 12)
	result.ProportionalVacationBonus = money.RoundCurrency(result.ProportionalVacation.Div(three))

	// Thirteenth: prior-year pending months plus the current year
	result.PendingThirteenth = money.ProportionalValue(remuneration, input.PendingThirteenthMonths, 12)
	yearStart := dateutil.StartOfYear(dismissal)
	if admission.After(yearStart) {
		yearStart = admission
	}
	result.ThirteenthMonths = dateutil.MonthsWithFifteenDays(yearStart, dismissal)
	result.ProportionalThirteenth = money.ProportionalValue(remuneration, result.ThirteenthMonths, 12)

	// FGTS: deposit due on the rescission amounts, fine over the whole account
	fineRate := rule.fine(fgtsRules)
	result.FGTSDeposit = money.RoundCurrency(money.Sum(result.SalaryBalance, result.NoticePay,
		result.PendingThirteenth, result.ProportionalThirteenth).Mul(fgtsRules.DepositRate))
	account := input.FGTSBalance.Add(result.FGTSDeposit)
	result.FGTSFine = money.RoundCurrency(account.Mul(fineRate))

	canWithdraw := rule.withdrawal || (input.Category == domain.TerminationContractEnd && input.ContractEndWithdrawal)
	result.FGTSWithdrawable = decimal.Zero
	if canWithdraw {
		share := one
		if rule.partialFGTS {
			share = fgtsRules.MutualWithdrawalShare
		}
		result.FGTSWithdrawable = money.RoundCurrency(account.Mul(share))
	}

	result.GrossTotal = money.Sum(
		result.SalaryBalance,
		result.NoticePay,
		result.AccruedVacation,
		result.AccruedVacationBonus,
		result.ProportionalVacation,
		result.ProportionalVacationBonus,
		result.PendingThirteenth,
		result.ProportionalThirteenth,
		result.FGTSFine,
	)

	// Withholding excludes the FGTS fine
	taxable := result.GrossTotal.Sub(result.FGTSFine)
	result.INSS = ce.CalculateINSS(taxable)
	result.IRRF = ce.CalculateIRRF(taxable, input.Dependents, result.INSS.Contribution)

	thirteenthDue := result.PendingThirteenth.Add(result.ProportionalThirteenth)
	result.ThirteenthAdvance = money.RoundCurrency(decimal.Min(input.ThirteenthAdvancePaid, thirteenthDue))

	result.TotalDeductions = money.Sum(result.INSS.Contribution, result.IRRF.Tax, result.ThirteenthAdvance)
	result.NetTotal = money.RoundCurrency(money.MaxZero(result.GrossTotal.Sub(result.TotalDeductions)))
	result.TotalToReceive = result.NetTotal.Add(result.FGTSWithdrawable)

	monthsOfService := dateutil.MonthsBetween(admission, dismissal)
	details.ServiceTime = dateutil.ServiceTimeText(admission, dismissal)
	details.LegalBasis = legal(legalRescission, legalINSS, legalIRRF)
	details.MonthsOfService = monthsOfService
	details.CompleteYears = dateutil.CompleteYears(admission, dismissal)
	details.EligibleForFGTSFine = fineRate.IsPositive()
	details.CanWithdrawFGTS = canWithdraw
	details.EligibleForUnemploymentInsurance = rule.unemploymentOK &&
		monthsOfService >= ce.Rules.Unemployment.RequiredMonths(0)

	ce.describeRescission(result, remuneration, fineRate, account)

	ce.Logger.Debugf("rescission: category=%s gross=%s net=%s fgts=%s", input.Category, result.GrossTotal, result.NetTotal, result.FGTSWithdrawable)
	return result, nil
}

func (ce *CalculationEngine) describeRescission(r *domain.RescissionResult, remuneration, fineRate, account decimal.Decimal) {
	d := &r.Details.Details
	input := r.Input

	d.AddFormula("Saldo de salário", fmt.Sprintf("%s / 30 x %d dias = %s", brl(remuneration), r.DaysWorkedInMonth, brl(r.SalaryBalance)))
	if r.NoticeDays > 0 {
		expr := fmt.Sprintf("%s / 30 x %d dias", brl(remuneration), r.NoticeDays)
		if input.Category == domain.TerminationMutualAgreement {
			expr += " / 2"
		}
		d.AddFormula("Aviso prévio indenizado", fmt.Sprintf("%s = %s", expr, brl(r.NoticePay)))
	} else {
		d.AddFormula("Aviso prévio indenizado", "não devido nesta modalidade = "+brl(decimal.Zero))
	}
	if input.AccruedVacationPeriods > 0 {
		d.AddFormula("Férias vencidas", fmt.Sprintf("%s x %d período(s) + 1/3 = %s",
			brl(remuneration), input.AccruedVacationPeriods, brl(r.AccruedVacation.Add(r.AccruedVacationBonus))))
	}
	d.AddFormula("Férias proporcionais", fmt.Sprintf("%s / 12 x %d meses + 1/3 = %s",
		brl(remuneration), r.ProportionalVacationMonths, brl(r.ProportionalVacation.Add(r.ProportionalVacationBonus))))
	if input.PendingThirteenthMonths > 0 {
		d.AddFormula("13º salário pendente", fmt.Sprintf("%s / 12 x %d meses = %s",
			brl(remuneration), input.PendingThirteenthMonths, brl(r.PendingThirteenth)))
	}
	d.AddFormula("13º salário proporcional", fmt.Sprintf("%s / 12 x %d meses = %s",
		brl(remuneration), r.ThirteenthMonths, brl(r.ProportionalThirteenth)))
	d.AddFormula("Depósito FGTS rescisório", fmt.Sprintf("%s x (saldo de salário + aviso + 13º) = %s",
		pct(ce.Rules.FGTS.DepositRate), brl(r.FGTSDeposit)))
	if fineRate.IsPositive() {
		d.AddFormula("Multa FGTS", fmt.Sprintf("%s x %s = %s", brl(account), pct(fineRate), brl(r.FGTSFine)))
	} else {
		d.AddFormula("Multa FGTS", "não devida nesta modalidade = "+brl(decimal.Zero))
	}
	describeINSS(d, r.INSS)
	describeIRRF(d, r.IRRF)
	if r.ThirteenthAdvance.IsPositive() {
		d.AddFormula("Adiantamento de 13º", brl(r.ThirteenthAdvance))
	}
	d.AddFormula("Líquido", fmt.Sprintf("%s - %s = %s", brl(r.GrossTotal), brl(r.TotalDeductions), brl(r.NetTotal)))
	if r.Details.CanWithdrawFGTS {
		d.AddFormula("Saque FGTS", brl(r.FGTSWithdrawable))
	}

	d.AddNote("Modalidade: " + input.Category.Label())
	d.AddNote("O aviso prévio não é projetado no tempo de serviço para fins de férias e 13º.")
	if !r.Details.CanWithdrawFGTS {
		d.AddNote("Saldo do FGTS não disponível para saque nesta modalidade.")
	}
}
