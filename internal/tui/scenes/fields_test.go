package scenes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3000", "3000.00"},
		{"3000.50", "3000.50"},
		{"3.000,50", "3000.50"},
		{"R$ 1.234.567,89", "1234567.89"},
		{"  150,5 ", "150.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}

	_, err := ParseMoney("três mil")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"15/07/2024", "2024-07-15"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(dateutil.Date(2024, 7, 15)), in)
	}

	_, err := ParseDate("07/15/2024")
	assert.Error(t, err)
}

func TestParseFlag(t *testing.T) {
	for _, in := range []string{"s", "Sim", "y", "TRUE", "1"} {
		got, err := ParseFlag(in)
		require.NoError(t, err, in)
		assert.True(t, got, in)
	}
	for _, in := range []string{"", "n", "não", "nao", "false", "0"} {
		got, err := ParseFlag(in)
		require.NoError(t, err, in)
		assert.False(t, got, in)
	}
	_, err := ParseFlag("talvez")
	assert.Error(t, err)
}

func TestFieldsFor_EveryCalculator(t *testing.T) {
	for _, kind := range domain.AllCalculators {
		specs := FieldsFor(kind)
		require.NotEmpty(t, specs, kind)

		seen := map[string]bool{}
		for _, s := range specs {
			assert.False(t, seen[s.Key], "duplicate field %s in %s", s.Key, kind)
			seen[s.Key] = true
			assert.NotEmpty(t, s.Label)
		}
	}
	assert.Nil(t, FieldsFor("payroll"))
}

func TestBuildRequest_Rescission(t *testing.T) {
	req, err := BuildRequest(domain.CalculatorRescission, map[string]string{
		"salary":         "3.000,00",
		"admission_date": "01/01/2023",
		"dismissal_date": "15/07/2024",
		"fgts_balance":   "5000",
	})
	require.NoError(t, err)
	require.NotNil(t, req.Rescission)

	in := req.Rescission
	assert.Equal(t, domain.CalculatorRescission, req.Calculator)
	assert.True(t, in.Salary.Equal(decimal.NewFromInt(3000)))
	assert.True(t, in.AdmissionDate.Equal(dateutil.Date(2023, 1, 1)))
	assert.True(t, in.DismissalDate.Equal(dateutil.Date(2024, 7, 15)))
	assert.Equal(t, domain.TerminationNoCause, in.Category, "default choice")
	assert.False(t, in.ContractEndWithdrawal)
	assert.True(t, in.FGTSBalance.Equal(decimal.NewFromInt(5000)))
}

func TestBuildRequest_Thirteenth(t *testing.T) {
	req, err := BuildRequest(domain.CalculatorThirteenthComplement, map[string]string{
		"salary":        "3000",
		"months_worked": "12",
		"advance_paid":  "1500",
	})
	require.NoError(t, err)
	require.NotNil(t, req.Thirteenth.MonthsWorked)
	assert.Equal(t, 12, *req.Thirteenth.MonthsWorked)

	req, err = BuildRequest(domain.CalculatorThirteenth, map[string]string{
		"salary":         "3000",
		"admission_date": "10/08/2019",
		"reference_date": "15/07/2024",
	})
	require.NoError(t, err)
	assert.Nil(t, req.Thirteenth.MonthsWorked, "blank months falls back to the dates")
}

func TestBuildRequest_PremiumKinds(t *testing.T) {
	req, err := BuildRequest(domain.CalculatorNightShift, map[string]string{
		"base_salary":      "2000",
		"night_shift_type": "rural",
	})
	require.NoError(t, err)
	assert.True(t, req.Premium.Applies)
	assert.Equal(t, domain.PremiumModeFull, req.Premium.Mode)
	assert.Equal(t, domain.NightShiftRural, req.Premium.NightShiftType)
	assert.Empty(t, req.Premium.UnhealthyGrade)

	req, err = BuildRequest(domain.CalculatorUnhealthy, map[string]string{"base_salary": "2000"})
	require.NoError(t, err)
	assert.Equal(t, domain.UnhealthyMedium, req.Premium.UnhealthyGrade)
	assert.Empty(t, req.Premium.NightShiftType)
}

func TestBuildRequest_FGTSRate(t *testing.T) {
	req, err := BuildRequest(domain.CalculatorFGTS, map[string]string{
		"salary":             "3000",
		"months":             "24",
		"apprentice":         "s",
		"salary_growth_rate": "10",
	})
	require.NoError(t, err)
	assert.True(t, req.FGTS.Apprentice)
	assert.Equal(t, "0.1", req.FGTS.SalaryGrowthRate.String())
}

func TestBuildRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.CalculatorKind
		values map[string]string
		want   string
	}{
		{"missing required", domain.CalculatorWithholding, map[string]string{}, "Salário bruto é obrigatório"},
		{"bad money", domain.CalculatorWithholding, map[string]string{"gross_salary": "abc"}, "Salário bruto: valor inválido"},
		{"bad int", domain.CalculatorWithholding, map[string]string{"gross_salary": "3000", "dependents": "dois"}, "Dependentes: número inteiro inválido"},
		{"bad date", domain.CalculatorUnemployment, map[string]string{
			"average_salary": "2000", "months_worked": "15", "calculation_date": "ontem",
		}, "Data do cálculo: data inválida"},
		{"bad choice", domain.CalculatorRescission, map[string]string{
			"salary": "3000", "admission_date": "01/01/2023", "dismissal_date": "15/07/2024", "category": "layoff",
		}, "Modalidade: opção inválida"},
		{"unknown calculator", "payroll", map[string]string{}, "calculadora desconhecida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.kind, tt.values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
