package calculation

import (
	"testing"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNightShift(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name     string
		input    domain.PremiumInput
		premium  string
		total    string
		rate     string
		applied  bool
		hasNotes bool
	}{
		{
			name:    "urban full period",
			input:   domain.PremiumInput{BaseSalary: amt("2000"), Applies: true, NightShiftType: domain.NightShiftUrban},
			premium: "400.00", total: "2400.00", rate: "20", applied: true,
		},
		{
			name:    "rural full period",
			input:   domain.PremiumInput{BaseSalary: amt("2000"), Applies: true, NightShiftType: domain.NightShiftRural},
			premium: "500.00", total: "2500.00", rate: "25", applied: true,
		},
		{
			name:    "default shift type is urban",
			input:   domain.PremiumInput{BaseSalary: amt("2000"), Applies: true},
			premium: "400.00", total: "2400.00", rate: "20", applied: true,
		},
		{
			name: "proportional hours",
			input: domain.PremiumInput{
				BaseSalary: amt("2200"), Applies: true, Mode: domain.PremiumModeProportional,
				ExposedHours: amt("55"), TotalHours: amt("220"),
			},
			premium: "110.00", total: "2310.00", rate: "20", applied: true,
		},
		{
			name:    "not applicable",
			input:   domain.PremiumInput{BaseSalary: amt("2000"), Applies: false},
			premium: "0.00", total: "2000.00", rate: "0", applied: false, hasNotes: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateNightShift(tt.input)
			require.NoError(t, err)

			assertAmount(t, tt.premium, result.Premium)
			assertAmount(t, tt.total, result.TotalWithPremium)
			assert.Equal(t, tt.rate, result.Rate.String())
			assert.Equal(t, tt.applied, result.Applied)
			assert.Equal(t, domain.PremiumNightShift, result.Kind)
			if tt.hasNotes {
				assert.NotEmpty(t, result.Details.Notes)
			}
			assert.True(t, result.TotalWithPremium.Equal(result.Input.BaseSalary.Add(result.Premium)))
		})
	}
}

func TestCalculateHazardPay(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("full exposure uses the worker salary", func(t *testing.T) {
		result, err := engine.CalculateHazardPay(domain.PremiumInput{BaseSalary: amt("3000"), Applies: true})
		require.NoError(t, err)
		assertAmount(t, "900.00", result.Premium)
		assertAmount(t, "3000.00", result.CalculationBase)
		assert.Equal(t, "30", result.Rate.String())
		assert.Contains(t, result.Details.Notes[len(result.Details.Notes)-1], "não são cumuláveis")
	})

	t.Run("proportional exposure", func(t *testing.T) {
		result, err := engine.CalculateHazardPay(domain.PremiumInput{
			BaseSalary: amt("3000"), Applies: true, Mode: domain.PremiumModeProportional,
			ExposedHours: amt("80"), TotalHours: amt("220"),
		})
		require.NoError(t, err)
		assertAmount(t, "327.27", result.Premium)
		assert.Equal(t, "0.3636", result.Proportion.String())
	})

	t.Run("full mode with partial exposure falls back to proportional", func(t *testing.T) {
		result, err := engine.CalculateHazardPay(domain.PremiumInput{
			BaseSalary: amt("3000"), Applies: true, Mode: domain.PremiumModeFull,
			ExposedHours: amt("110"), TotalHours: amt("220"),
		})
		require.NoError(t, err)
		assertAmount(t, "450.00", result.Premium)
		assert.Contains(t, result.Details.Notes[0], "proporcional")
	})

	t.Run("full exposure with hours", func(t *testing.T) {
		result, err := engine.CalculateHazardPay(domain.PremiumInput{
			BaseSalary: amt("3000"), Applies: true, Mode: domain.PremiumModeFull,
			ExposedHours: amt("220"), TotalHours: amt("220"),
		})
		require.NoError(t, err)
		assertAmount(t, "900.00", result.Premium)
		assert.Equal(t, "1", result.Proportion.String())
	})
}

func TestCalculateUnhealthyPay_UsesMinimumWage(t *testing.T) {
	engine := NewCalculationEngine()
	minimumWage := engine.Rules.MinimumWage

	for _, salary := range []string{"1000", "5000", "25000"} {
		t.Run("salary "+salary, func(t *testing.T) {
			result, err := engine.CalculateUnhealthyPay(domain.PremiumInput{
				BaseSalary:     amt(salary),
				Applies:        true,
				UnhealthyGrade: domain.UnhealthyMedium,
			})
			require.NoError(t, err)

			expected := minimumWage.Mul(amt("0.20")).Round(2)
			assert.True(t, expected.Equal(result.Premium), "premium %s should be 20%% of the minimum wage", result.Premium)
			assert.True(t, result.CalculationBase.Equal(minimumWage))
		})
	}
}

func TestCalculateUnhealthyPay_Grades(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		grade    domain.UnhealthyGrade
		expected string
	}{
		{domain.UnhealthyMinimum, "141.20"},
		{domain.UnhealthyMedium, "282.40"},
		{domain.UnhealthyMaximum, "564.80"},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			result, err := engine.CalculateUnhealthyPay(domain.PremiumInput{
				BaseSalary: amt("2500"), Applies: true, UnhealthyGrade: tt.grade,
			})
			require.NoError(t, err)
			assertAmount(t, tt.expected, result.Premium)
		})
	}
}

func TestPremiums_InvalidInput(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name  string
		input domain.PremiumInput
	}{
		{
			name: "exposed hours above total",
			input: domain.PremiumInput{
				BaseSalary: amt("3000"), Applies: true, ExposedHours: amt("240"), TotalHours: amt("220"),
			},
		},
		{
			name: "proportional without total hours",
			input: domain.PremiumInput{
				BaseSalary: amt("3000"), Applies: true, Mode: domain.PremiumModeProportional, ExposedHours: amt("10"),
			},
		},
		{
			name:  "negative salary",
			input: domain.PremiumInput{BaseSalary: amt("-1"), Applies: true},
		},
		{
			name:  "negative hours",
			input: domain.PremiumInput{BaseSalary: amt("3000"), Applies: true, ExposedHours: amt("-1")},
		},
		{
			name:  "unknown mode",
			input: domain.PremiumInput{BaseSalary: amt("3000"), Applies: true, Mode: "hourly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.CalculateHazardPay(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := engine.CalculateUnhealthyPay(domain.PremiumInput{BaseSalary: amt("3000"), Applies: true, UnhealthyGrade: "extreme"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.CalculateNightShift(domain.PremiumInput{BaseSalary: amt("3000"), Applies: true, NightShiftType: "lunar"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
