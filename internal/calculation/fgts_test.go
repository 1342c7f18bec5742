package calculation

import (
	"testing"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyFGTSYield(t *testing.T) {
	engine := NewCalculationEngine()
	monthly := engine.MonthlyFGTSYield()

	assert.Equal(t, "0.00246627", monthly.StringFixed(8))
	assert.Equal(t, int32(-8), monthly.Exponent())
	assert.True(t, monthly.Equal(engine.MonthlyFGTSYield()))
}

func TestCalculateFGTS_Deposits(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name    string
		input   domain.FGTSInput
		base    string
		deposit string
		rate    string
	}{
		{
			name:    "salary only",
			input:   domain.FGTSInput{Salary: amt("3000"), Months: 12},
			base:    "3000.00", deposit: "240.00", rate: "8",
		},
		{
			name:    "with thirteenth and vacation third",
			input:   domain.FGTSInput{Salary: amt("3000"), Months: 12, IncludeThirteenth: true, IncludeVacationBonus: true},
			base:    "3333.33", deposit: "266.67", rate: "8",
		},
		{
			name:    "apprentice contract",
			input:   domain.FGTSInput{Salary: amt("3000"), Months: 12, Apprentice: true},
			base:    "3000.00", deposit: "60.00", rate: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateFGTS(tt.input)
			require.NoError(t, err)

			assertAmount(t, tt.base, result.ContributionBase)
			assertAmount(t, tt.deposit, result.MonthlyDeposit)
			assert.Equal(t, tt.rate, result.DepositRate.String())
		})
	}
}

func TestCalculateFGTS_Projection(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateFGTS(domain.FGTSInput{Salary: amt("3000"), Months: 12})
	require.NoError(t, err)

	assertAmount(t, "2880.00", result.TotalDeposits)
	assert.Equal(t, "0.2466", result.MonthlyYield.String())
	assert.True(t, result.ProjectedBalance.GreaterThan(result.TotalDeposits), "balance earns yield")
	assert.True(t, result.TotalYield.IsPositive())
	assert.True(t, result.ProjectedBalance.Equal(result.TotalDeposits.Add(result.TotalYield)))
	assert.NotEmpty(t, result.Details.Formulas)
}

func TestCalculateFGTS_ExistingBalanceGrows(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateFGTS(domain.FGTSInput{Salary: amt("3000"), CurrentBalance: amt("10000"), Months: 12})
	require.NoError(t, err)

	// one year at 3% on the opening balance alone
	assert.True(t, result.ProjectedBalance.GreaterThan(amt("13180")))
	assert.True(t, result.ProjectedBalance.Equal(amt("10000").Add(result.TotalDeposits).Add(result.TotalYield)))
}

func TestCalculateFGTS_Scenarios(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateFGTS(domain.FGTSInput{Salary: amt("3000"), CurrentBalance: amt("10000"), Months: 1})
	require.NoError(t, err)
	require.Len(t, result.Scenarios, 4)

	balance := result.ProjectedBalance
	byName := make(map[string]domain.FGTSWithdrawalScenario)
	for _, s := range result.Scenarios {
		byName[s.Name] = s
	}

	noCause := byName["no_cause"]
	assert.True(t, noCause.Withdrawable.Equal(balance))
	assert.True(t, noCause.Fine.Equal(balance.Mul(amt("0.40")).Round(2)))

	mutual := byName["mutual_agreement"]
	assert.True(t, mutual.Withdrawable.Equal(balance.Mul(amt("0.80")).Round(2)))
	assert.True(t, mutual.Fine.Equal(balance.Mul(amt("0.20")).Round(2)))

	resignation := byName["resignation"]
	assert.True(t, resignation.Total.IsZero())

	housing := byName["home_financing"]
	assert.True(t, housing.Fine.IsZero())
	assert.True(t, housing.Total.Equal(balance))
}

func TestCalculateFGTS_YearlyGrowth(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("without salary growth the table ends at the projected balance", func(t *testing.T) {
		result, err := engine.CalculateFGTS(domain.FGTSInput{Salary: amt("3000"), Months: 30})
		require.NoError(t, err)

		require.Len(t, result.YearlyGrowth, 3)
		last := result.YearlyGrowth[len(result.YearlyGrowth)-1]
		assert.True(t, last.EndingBalance.Equal(result.ProjectedBalance))
		assertAmount(t, "1440.00", last.Deposits, "six months in the final partial year")

		for i, year := range result.YearlyGrowth {
			assert.Equal(t, i+1, year.Year)
			assertAmount(t, "3000.00", year.Salary)
		}
	})

	t.Run("salary growth is applied from the second year", func(t *testing.T) {
		result, err := engine.CalculateFGTS(domain.FGTSInput{
			Salary: amt("3000"), Months: 24, SalaryGrowthRate: amt("0.10"),
		})
		require.NoError(t, err)

		require.Len(t, result.YearlyGrowth, 2)
		assertAmount(t, "3000.00", result.YearlyGrowth[0].Salary)
		assertAmount(t, "3300.00", result.YearlyGrowth[1].Salary)
		assertAmount(t, "3168.00", result.YearlyGrowth[1].Deposits)
	})
}

func TestCalculateFGTS_Rejections(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name  string
		input domain.FGTSInput
		field string
	}{
		{"zero salary", domain.FGTSInput{Salary: decimal.Zero, Months: 12}, "salary"},
		{"negative balance", domain.FGTSInput{Salary: amt("3000"), CurrentBalance: amt("-1"), Months: 12}, "current_balance"},
		{"zero months", domain.FGTSInput{Salary: amt("3000")}, "months"},
		{"horizon too long", domain.FGTSInput{Salary: amt("3000"), Months: 601}, "months"},
		{"salary collapse", domain.FGTSInput{Salary: amt("3000"), Months: 12, SalaryGrowthRate: amt("-1")}, "salary_growth_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.CalculateFGTS(tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)

			var calcErr *CalculationError
			require.ErrorAs(t, err, &calcErr)
			assert.Equal(t, tt.field, calcErr.Field)
		})
	}
}
