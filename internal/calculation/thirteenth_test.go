package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestThirteenth_FifteenDayRule(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name      string
		admission string
		reference string
		months    int
	}{
		{"twenty days in january", "2024-01-01", "2024-01-20", 1},
		{"ten days in january", "2024-01-01", "2024-01-10", 0},
		{"full year", "2020-06-01", "2024-12-31", 12},
		{"admission mid-year", "2024-03-20", "2024-12-20", 9},
		{"earlier admission counts from january", "2019-08-10", "2024-07-15", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateThirteenth(domain.ThirteenthInput{
				Salary:        amt("3000"),
				AdmissionDate: mustDate(t, tt.admission),
				ReferenceDate: mustDate(t, tt.reference),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.months, result.EligibleMonths)
		})
	}
}

func TestCalculateThirteenth_FullYear(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateThirteenth(domain.ThirteenthInput{
		Salary:       amt("3000"),
		MonthsWorked: intPtr(12),
	})
	require.NoError(t, err)

	assertAmount(t, "3000.00", result.GrossTotal)
	assertAmount(t, "258.82", result.INSS.Contribution)
	assertAmount(t, "36.15", result.IRRF.Tax)
	assertAmount(t, "2705.03", result.NetTotal)
	assert.Empty(t, result.Details.ServiceTime)
}

func TestCalculateThirteenth_Advance(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("advance is deducted", func(t *testing.T) {
		result, err := engine.CalculateThirteenth(domain.ThirteenthInput{
			Salary: amt("3000"), MonthsWorked: intPtr(12), AdvancePaid: amt("1500"),
		})
		require.NoError(t, err)
		assertAmount(t, "1500.00", result.AdvanceDeduction)
		assertAmount(t, "1794.97", result.TotalDeductions)
		assertAmount(t, "1205.03", result.NetTotal)
	})

	t.Run("advance is capped at gross and net clamps at zero", func(t *testing.T) {
		result, err := engine.CalculateThirteenth(domain.ThirteenthInput{
			Salary: amt("3000"), MonthsWorked: intPtr(12), AdvancePaid: amt("5000"),
		})
		require.NoError(t, err)
		assertAmount(t, "3000.00", result.AdvanceDeduction)
		assert.True(t, result.NetTotal.IsZero())
		assert.NotEmpty(t, result.Details.Notes)
	})
}

func TestCalculateThirteenth_Proportional(t *testing.T) {
	result, err := NewCalculationEngine().CalculateThirteenth(domain.ThirteenthInput{
		Salary: amt("2500"), AverageVariablePay: amt("500"), MonthsWorked: intPtr(7),
	})
	require.NoError(t, err)
	assertAmount(t, "1750.00", result.GrossTotal)
	assert.True(t, result.NetTotal.Equal(result.GrossTotal.Sub(result.TotalDeductions)))
}

func TestCalculateThirteenth_Rejections(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name  string
		input domain.ThirteenthInput
	}{
		{"months above twelve", domain.ThirteenthInput{Salary: amt("3000"), MonthsWorked: intPtr(13)}},
		{"negative months", domain.ThirteenthInput{Salary: amt("3000"), MonthsWorked: intPtr(-1)}},
		{"zero salary", domain.ThirteenthInput{Salary: amt("0"), MonthsWorked: intPtr(12)}},
		{"negative advance", domain.ThirteenthInput{Salary: amt("3000"), MonthsWorked: intPtr(12), AdvancePaid: amt("-1")}},
		{"missing reference date", domain.ThirteenthInput{Salary: amt("3000"), AdmissionDate: dateutil.Date(2024, 1, 1)}},
		{"reference before admission", domain.ThirteenthInput{
			Salary: amt("3000"), AdmissionDate: dateutil.Date(2024, 5, 1), ReferenceDate: dateutil.Date(2024, 4, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.CalculateThirteenth(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculateThirteenthInstallments(t *testing.T) {
	engine := NewCalculationEngine()
	input := domain.ThirteenthInput{Salary: amt("3000"), MonthsWorked: intPtr(12)}

	first, err := engine.CalculateThirteenthAdvance(input)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Installment)
	assertAmount(t, "1500.00", first.GrossTotal)
	assertAmount(t, "1500.00", first.NetTotal)
	assert.True(t, first.TotalDeductions.IsZero())

	second, err := engine.CalculateThirteenthComplement(input)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Installment)
	assertAmount(t, "1500.00", second.AdvancePaid)
	assertAmount(t, "1500.00", second.GrossTotal)
	assertAmount(t, "258.82", second.INSS.Contribution, "INSS is charged over the full thirteenth")
	assertAmount(t, "1205.03", second.NetTotal)

	full, err := engine.CalculateThirteenth(input)
	require.NoError(t, err)
	assert.True(t, first.NetTotal.Add(second.NetTotal).Equal(full.NetTotal), "split payments add up to the single payment")
}

func TestCalculateThirteenthComplement_InformedAdvance(t *testing.T) {
	result, err := NewCalculationEngine().CalculateThirteenthComplement(domain.ThirteenthInput{
		Salary: amt("3000"), MonthsWorked: intPtr(12), AdvancePaid: amt("1000"),
	})
	require.NoError(t, err)
	assertAmount(t, "2000.00", result.GrossTotal)
	assertAmount(t, "1705.03", result.NetTotal)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}
