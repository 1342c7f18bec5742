package calculation

import (
	"testing"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibleUnemployment() domain.UnemploymentInput {
	return domain.UnemploymentInput{
		AverageSalary:         amt("2000"),
		MonthsWorked:          15,
		HasFormalRegistration: true,
		DismissalReason:       domain.TerminationNoCause,
		CalculationDate:       dateutil.Date(2024, 7, 15),
	}
}

func TestParcelValue(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name    string
		average string
		parcel  string
	}{
		{"raised to the minimum wage", "1000", "1412.00"},
		{"below the threshold", "2000", "1600.00"},
		{"above the threshold", "2500", "1885.40"},
		{"capped at the ceiling", "5000", "2313.74"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.parcel, engine.ParcelValue(amt(tt.average)))
		})
	}
}

func TestCalculateUnemployment_Eligible(t *testing.T) {
	result := NewCalculationEngine().CalculateUnemployment(eligibleUnemployment())

	require.True(t, result.IsEligible)
	assert.Empty(t, result.Reasons)
	assert.Equal(t, 12, result.RequiredMonths)
	assert.Equal(t, 4, result.ParcelCount)
	assertAmount(t, "1600.00", result.ParcelValue)
	assertAmount(t, "6400.00", result.TotalBenefit)

	require.Len(t, result.Parcels, 4)
	assert.Equal(t, "08/2024", result.Parcels[0].DueMonth)
	assert.Equal(t, "11/2024", result.Parcels[3].DueMonth)
	for i, p := range result.Parcels {
		assert.Equal(t, i+1, p.Index)
		assert.True(t, p.Amount.Equal(result.ParcelValue))
	}
}

func TestCalculateUnemployment_AveragesLastSalaries(t *testing.T) {
	input := eligibleUnemployment()
	input.LastSalaries = []decimal.Decimal{amt("2000"), amt("2200"), amt("2400")}

	result := NewCalculationEngine().CalculateUnemployment(input)
	require.True(t, result.IsEligible)
	assertAmount(t, "2200.00", result.AverageSalary)
	assertAmount(t, "1735.40", result.ParcelValue)
}

func TestCalculateUnemployment_SecondRequest(t *testing.T) {
	input := eligibleUnemployment()
	input.PreviousRequests = 1
	input.MonthsWorked = 9

	result := NewCalculationEngine().CalculateUnemployment(input)
	require.True(t, result.IsEligible)
	assert.Equal(t, 9, result.RequiredMonths)
	assert.Equal(t, 3, result.ParcelCount)
}

func TestCalculateUnemployment_CollectsEveryReason(t *testing.T) {
	input := eligibleUnemployment()
	input.HasFormalRegistration = false
	input.DismissalReason = domain.TerminationResignation
	input.MonthsWorked = 3

	result := NewCalculationEngine().CalculateUnemployment(input)

	assert.False(t, result.IsEligible)
	assert.Len(t, result.Reasons, 3)
	assert.Empty(t, result.Parcels)
	assert.Equal(t, 0, result.ParcelCount)
	assert.True(t, result.TotalBenefit.IsZero())
	assert.Contains(t, result.Reasons[2], "mínimo de 12 meses")
}

func TestCalculateUnemployment_EligibleReasons(t *testing.T) {
	engine := NewCalculationEngine()

	for _, category := range domain.AllTerminationCategories {
		t.Run(string(category), func(t *testing.T) {
			input := eligibleUnemployment()
			input.DismissalReason = category
			result := engine.CalculateUnemployment(input)

			switch category {
			case domain.TerminationNoCause, domain.TerminationIndirectDismissal, domain.TerminationContractEnd:
				assert.True(t, result.IsEligible)
			default:
				assert.False(t, result.IsEligible)
				assert.Len(t, result.Reasons, 1)
			}
		})
	}
}

func TestCalculateUnemployment_ScheduleCrossesYear(t *testing.T) {
	input := eligibleUnemployment()
	input.CalculationDate = dateutil.Date(2024, 12, 10)

	result := NewCalculationEngine().CalculateUnemployment(input)
	require.NotEmpty(t, result.Parcels)
	assert.Equal(t, "01/2025", result.Parcels[0].DueMonth)
}

func TestCalculateUnemployment_ConfigurableTaper(t *testing.T) {
	rules := domain.DefaultRegulatoryConfig()
	rules.Unemployment.ExcessRate = amt("0.60")
	engine := NewCalculationEngineWithConfig(rules)

	// 2118.00 x 80% + 382.00 x 60%
	assertAmount(t, "1923.60", engine.ParcelValue(amt("2500")))
}
