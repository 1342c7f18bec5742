package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegulatoryConfig_Validates(t *testing.T) {
	rules := DefaultRegulatoryConfig()
	require.NoError(t, rules.Validate())

	assert.Equal(t, 2024, rules.Metadata.DataYear)
	assert.Equal(t, "1412", rules.MinimumWage.String())

	ceiling, capped := rules.INSS.Brackets.Ceiling()
	assert.True(t, capped, "INSS table has a contribution ceiling")
	assert.Equal(t, "7786.02", ceiling.StringFixed(2))

	_, capped = rules.IRRF.Brackets.Ceiling()
	assert.False(t, capped, "IRRF top bracket is open-ended")
}

func TestBracketTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   BracketTable
		wantErr string
	}{
		{
			name:    "empty",
			table:   BracketTable{},
			wantErr: "empty",
		},
		{
			name: "does not start at zero",
			table: BracketTable{
				{Min: dec("100"), Max: dec("200"), Rate: dec("0.1")},
			},
			wantErr: "start at 0",
		},
		{
			name: "overlap",
			table: BracketTable{
				{Min: dec("0"), Max: dec("200"), Rate: dec("0.1")},
				{Min: dec("150"), Max: dec("300"), Rate: dec("0.2")},
			},
			wantErr: "overlaps",
		},
		{
			name: "gap",
			table: BracketTable{
				{Min: dec("0"), Max: dec("200"), Rate: dec("0.1")},
				{Min: dec("250"), Max: dec("300"), Rate: dec("0.2")},
			},
			wantErr: "gap",
		},
		{
			name: "open bracket in the middle",
			table: BracketTable{
				{Min: dec("0"), Rate: dec("0.1")},
				{Min: dec("0.01"), Max: dec("300"), Rate: dec("0.2")},
			},
			wantErr: "open-ended",
		},
		{
			name: "decreasing deduction",
			table: BracketTable{
				{Min: dec("0"), Max: dec("200"), Rate: dec("0.1"), Deduction: dec("10")},
				{Min: dec("200.01"), Rate: dec("0.2"), Deduction: dec("5")},
			},
			wantErr: "deduction decreases",
		},
		{
			name: "one cent step is contiguous",
			table: BracketTable{
				{Min: dec("0"), Max: dec("200"), Rate: dec("0.1")},
				{Min: dec("200.01"), Rate: dec("0.2")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBracketTable_Find(t *testing.T) {
	table := DefaultRegulatoryConfig().IRRF.Brackets

	_, idx := table.Find(dec("1000"))
	assert.Equal(t, 0, idx)

	b, idx := table.Find(dec("2826.65"))
	assert.Equal(t, 1, idx)
	assert.True(t, b.Contains(dec("2826.65")))

	_, idx = table.Find(dec("2826.655"))
	assert.Equal(t, 2, idx, "sub-cent values above a bound fall into the next bracket")

	_, idx = table.Find(dec("100000"))
	assert.Equal(t, 4, idx)
}

func TestUnemploymentRules(t *testing.T) {
	rules := DefaultRegulatoryConfig().Unemployment

	assert.Equal(t, 12, rules.RequiredMonths(0))
	assert.Equal(t, 9, rules.RequiredMonths(1))
	assert.Equal(t, 6, rules.RequiredMonths(2))
	assert.Equal(t, 6, rules.RequiredMonths(5))

	assert.Equal(t, 0, rules.ParcelsFor(5))
	assert.Equal(t, 3, rules.ParcelsFor(6))
	assert.Equal(t, 3, rules.ParcelsFor(11))
	assert.Equal(t, 4, rules.ParcelsFor(12))
	assert.Equal(t, 4, rules.ParcelsFor(23))
	assert.Equal(t, 5, rules.ParcelsFor(24))
}

func TestRegulatoryConfig_ValidateRejects(t *testing.T) {
	rules := DefaultRegulatoryConfig()
	rules.MinimumWage = decimal.Zero
	assert.Error(t, rules.Validate())

	rules = DefaultRegulatoryConfig()
	rules.FGTS.MutualWithdrawalShare = dec("1.5")
	assert.Error(t, rules.Validate())

	rules = DefaultRegulatoryConfig()
	rules.Unemployment.ParcelTiers = nil
	assert.Error(t, rules.Validate())
}

func TestEnums(t *testing.T) {
	assert.True(t, TerminationNoCause.IsValid())
	assert.False(t, TerminationCategory("fired").IsValid())
	assert.Equal(t, "Pedido de demissão", TerminationResignation.Label())
	assert.True(t, PremiumMode("").IsValid())
	assert.False(t, UnhealthyGrade("extreme").IsValid())
	assert.True(t, CalculatorFGTS.IsValid())
	assert.Equal(t, "Férias", CalculatorVacation.Title())
}
