package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// maxFGTSMonths bounds the projection horizon (50 years)
const maxFGTSMonths = 600

// MonthlyFGTSYield converts the annual yield into the equivalent monthly rate.
// The float64 root is rounded to 8 places so every projection compounds the
// same decimal rate.
func (ce *CalculationEngine) MonthlyFGTSYield() decimal.Decimal {
	annual, _ := ce.Rules.FGTS.AnnualYield.Float64()
	return decimal.NewFromFloat(math.Pow(1+annual, 1.0/12) - 1).Round(8)
}

// fgtsContributionBase adds the monthly share of the thirteenth and of the
// vacation third to the salary when requested
func fgtsContributionBase(salary decimal.Decimal, input domain.FGTSInput) decimal.Decimal {
	base := salary
	if input.IncludeThirteenth {
		base = base.Add(salary.Div(twelve))
	}
	if input.IncludeVacationBonus {
		base = base.Add(salary.Div(three).Div(twelve))
	}
	return base
}

// compoundMonth applies one month of yield and then the deposit
func compoundMonth(balance, deposit, monthlyYield decimal.Decimal) decimal.Decimal {
	return balance.Mul(one.Add(monthlyYield)).Add(deposit).Round(10)
}

// CalculateFGTS projects the severance-fund balance, simulates the four
// withdrawal paths and builds a year-by-year growth table.
func (ce *CalculationEngine) CalculateFGTS(input domain.FGTSInput) (*domain.FGTSResult, error) {
	const kind = domain.CalculatorFGTS
	rules := ce.Rules.FGTS

	if !input.Salary.IsPositive() {
		return nil, newCalcError(kind, "salary", "must be positive")
	}
	if input.CurrentBalance.IsNegative() {
		return nil, newCalcError(kind, "current_balance", "must not be negative")
	}
	if input.Months <= 0 || input.Months > maxFGTSMonths {
		return nil, newCalcError(kind, "months", "must be between 1 and %d, got %d", maxFGTSMonths, input.Months)
	}
	if input.SalaryGrowthRate.LessThanOrEqual(one.Neg()) {
		return nil, newCalcError(kind, "salary_growth_rate", "must be greater than -100%%")
	}

	rate := rules.DepositRate
	if input.Apprentice {
		rate = rules.ApprenticeDepositRate
	}
	monthlyYield := ce.MonthlyFGTSYield()

	contributionBase := money.RoundCurrency(fgtsContributionBase(input.Salary, input))
	deposit := money.RoundCurrency(contributionBase.Mul(rate))

	balance := input.CurrentBalance
	for m := 0; m < input.Months; m++ {
		balance = compoundMonth(balance, deposit, monthlyYield)
	}

	projected := money.RoundCurrency(balance)
	totalDeposits := money.RoundCurrency(deposit.Mul(decimal.NewFromInt(int64(input.Months))))

	result := &domain.FGTSResult{
		Input:            input,
		DepositRate:      money.Percent(rate),
		ContributionBase: contributionBase,
		MonthlyDeposit:   deposit,
		MonthlyYield:     monthlyYield.Mul(decimal.NewFromInt(100)).Round(4),
		TotalDeposits:    totalDeposits,
		TotalYield:       projected.Sub(money.RoundCurrency(input.CurrentBalance)).Sub(totalDeposits),
		ProjectedBalance: projected,
		Scenarios:        ce.fgtsScenarios(projected),
		YearlyGrowth:     ce.fgtsYearlyGrowth(input, rate, monthlyYield),
		Details: domain.Details{
			LegalBasis: legal(legalFGTS),
		},
	}

	d := &result.Details
	d.AddFormula("Base de depósito", describeFGTSBase(input, contributionBase))
	d.AddFormula("Depósito mensal", fmt.Sprintf("%s x %s = %s", brl(contributionBase), pct(rate), brl(deposit)))
	d.AddFormula("Rendimento mensal", fmt.Sprintf("(1 + %s)^(1/12) - 1 = %s%% a.m.", pct(rules.AnnualYield), result.MonthlyYield.String()))
	d.AddFormula("Saldo projetado", fmt.Sprintf("%s + %s (depósitos) + %s (rendimentos) = %s",
		brl(input.CurrentBalance), brl(totalDeposits), brl(result.TotalYield), brl(projected)))
	if input.Apprentice {
		d.AddNote("Contrato de aprendizagem: alíquota reduzida de depósito.")
	}

	ce.Logger.Debugf("fgts: months=%d deposit=%s projected=%s", input.Months, deposit, projected)
	return result, nil
}

func describeFGTSBase(input domain.FGTSInput, base decimal.Decimal) string {
	expr := brl(input.Salary)
	if input.IncludeThirteenth {
		expr += " + 1/12 (13º)"
	}
	if input.IncludeVacationBonus {
		expr += " + 1/12 de 1/3 (férias)"
	}
	return expr + " = " + brl(base)
}

func (ce *CalculationEngine) fgtsScenarios(balance decimal.Decimal) []domain.FGTSWithdrawalScenario {
	rules := ce.Rules.FGTS

	noCauseFine := money.RoundCurrency(balance.Mul(rules.NoCauseFineRate))
	mutualWithdrawable := money.RoundCurrency(balance.Mul(rules.MutualWithdrawalShare))
	mutualFine := money.RoundCurrency(balance.Mul(rules.MutualFineRate))

	return []domain.FGTSWithdrawalScenario{
		{
			Name:         string(domain.TerminationNoCause),
			Label:        "Dispensa sem justa causa",
			Withdrawable: balance,
			Fine:         noCauseFine,
			Total:        balance.Add(noCauseFine),
			Note:         "Saque integral com multa de " + pct(rules.NoCauseFineRate),
		},
		{
			Name:         string(domain.TerminationMutualAgreement),
			Label:        "Acordo entre as partes",
			Withdrawable: mutualWithdrawable,
			Fine:         mutualFine,
			Total:        mutualWithdrawable.Add(mutualFine),
			Note:         "Saque de " + pct(rules.MutualWithdrawalShare) + " do saldo com multa de " + pct(rules.MutualFineRate),
		},
		{
			Name:         string(domain.TerminationResignation),
			Label:        "Pedido de demissão",
			Withdrawable: decimal.Zero,
			Fine:         decimal.Zero,
			Total:        decimal.Zero,
			Note:         "Sem direito a saque; o saldo permanece na conta vinculada",
		},
		{
			Name:         "home_financing",
			Label:        "Financiamento habitacional",
			Withdrawable: balance,
			Fine:         decimal.Zero,
			Total:        balance,
			Note:         "Saldo integral utilizável na aquisição de imóvel",
		},
	}
}

// fgtsYearlyGrowth repeats the projection year by year with the salary
// adjusted by SalaryGrowthRate at the start of each new year
func (ce *CalculationEngine) fgtsYearlyGrowth(input domain.FGTSInput, rate, monthlyYield decimal.Decimal) []domain.FGTSYear {
	var years []domain.FGTSYear

	salary := input.Salary
	balance := input.CurrentBalance
	remaining := input.Months
	growth := one.Add(input.SalaryGrowthRate)

	for year := 1; remaining > 0; year++ {
		if year > 1 {
			salary = money.RoundCurrency(salary.Mul(growth))
		}
		months := 12
		if remaining < 12 {
			months = remaining
		}

		deposit := money.RoundCurrency(money.RoundCurrency(fgtsContributionBase(salary, input)).Mul(rate))
		start := balance
		for m := 0; m < months; m++ {
			balance = compoundMonth(balance, deposit, monthlyYield)
		}
		deposits := deposit.Mul(decimal.NewFromInt(int64(months)))
		ending := money.RoundCurrency(balance)

		years = append(years, domain.FGTSYear{
			Year:          year,
			Salary:        salary,
			Deposits:      deposits,
			Yield:         ending.Sub(money.RoundCurrency(start)).Sub(deposits),
			EndingBalance: ending,
		})
		remaining -= months
	}
	return years
}
