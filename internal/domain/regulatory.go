package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RegulatoryConfig contains all legislated values the calculators read.
// It is loaded from regulatory.yaml and falls back to DefaultRegulatoryConfig.
// The engine never mutates it after construction.
type RegulatoryConfig struct {
	Metadata     RegulatoryMetadata `yaml:"metadata" json:"metadata"`
	MinimumWage  decimal.Decimal    `yaml:"minimum_wage" json:"minimum_wage"`
	INSS         INSSRules          `yaml:"inss" json:"inss"`
	IRRF         IRRFRules          `yaml:"irrf" json:"irrf"`
	Premiums     PremiumRules       `yaml:"premiums" json:"premiums"`
	FGTS         FGTSRules          `yaml:"fgts" json:"fgts"`
	Notice       NoticeRules        `yaml:"notice" json:"notice"`
	Vacation     VacationRules      `yaml:"vacation" json:"vacation"`
	Unemployment UnemploymentRules  `yaml:"unemployment" json:"unemployment"`
}

// RegulatoryMetadata describes the rule set
type RegulatoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// INSSRules holds the progressive social-contribution table
type INSSRules struct {
	Brackets BracketTable `yaml:"brackets" json:"brackets"`
}

// IRRFRules holds the monthly income-tax table
type IRRFRules struct {
	Brackets           BracketTable    `yaml:"brackets" json:"brackets"`
	DependentDeduction decimal.Decimal `yaml:"dependent_deduction" json:"dependent_deduction"`
}

// PremiumRules holds the premium rates as fractions
type PremiumRules struct {
	NightShiftUrban  decimal.Decimal `yaml:"night_shift_urban" json:"night_shift_urban"`
	NightShiftRural  decimal.Decimal `yaml:"night_shift_rural" json:"night_shift_rural"`
	Hazardous        decimal.Decimal `yaml:"hazardous" json:"hazardous"`
	UnhealthyMinimum decimal.Decimal `yaml:"unhealthy_minimum" json:"unhealthy_minimum"`
	UnhealthyMedium  decimal.Decimal `yaml:"unhealthy_medium" json:"unhealthy_medium"`
	UnhealthyMaximum decimal.Decimal `yaml:"unhealthy_maximum" json:"unhealthy_maximum"`
}

// NightShiftRate returns the rate for the given shift type
func (p PremiumRules) NightShiftRate(t NightShiftType) decimal.Decimal {
	if t == NightShiftRural {
		return p.NightShiftRural
	}
	return p.NightShiftUrban
}

// UnhealthyRate returns the rate for the given grade
func (p PremiumRules) UnhealthyRate(g UnhealthyGrade) decimal.Decimal {
	switch g {
	case UnhealthyMaximum:
		return p.UnhealthyMaximum
	case UnhealthyMedium:
		return p.UnhealthyMedium
	default:
		return p.UnhealthyMinimum
	}
}

// FGTSRules holds severance-fund deposit, yield and fine parameters
type FGTSRules struct {
	DepositRate           decimal.Decimal `yaml:"deposit_rate" json:"deposit_rate"`
	ApprenticeDepositRate decimal.Decimal `yaml:"apprentice_deposit_rate" json:"apprentice_deposit_rate"`
	AnnualYield           decimal.Decimal `yaml:"annual_yield" json:"annual_yield"`
	NoCauseFineRate       decimal.Decimal `yaml:"no_cause_fine_rate" json:"no_cause_fine_rate"`
	MutualFineRate        decimal.Decimal `yaml:"mutual_fine_rate" json:"mutual_fine_rate"`
	MutualWithdrawalShare decimal.Decimal `yaml:"mutual_withdrawal_share" json:"mutual_withdrawal_share"`
}

// NoticeRules holds the notice-period length parameters
type NoticeRules struct {
	BaseDays    int `yaml:"base_days" json:"base_days"`
	DaysPerYear int `yaml:"days_per_year" json:"days_per_year"`
	MaxDays     int `yaml:"max_days" json:"max_days"`
}

// VacationRules holds vacation entitlement parameters
type VacationRules struct {
	DaysPerPeriod int `yaml:"days_per_period" json:"days_per_period"`
	MaxSoldDays   int `yaml:"max_sold_days" json:"max_sold_days"`
}

// UnemploymentRules holds the unemployment-insurance gate and taper values
type UnemploymentRules struct {
	FirstRequestMonths  int             `yaml:"first_request_months" json:"first_request_months"`
	SecondRequestMonths int             `yaml:"second_request_months" json:"second_request_months"`
	LaterRequestMonths  int             `yaml:"later_request_months" json:"later_request_months"`
	ThresholdMultiplier decimal.Decimal `yaml:"threshold_multiplier" json:"threshold_multiplier"`
	BaseRate            decimal.Decimal `yaml:"base_rate" json:"base_rate"`
	ExcessRate          decimal.Decimal `yaml:"excess_rate" json:"excess_rate"`
	Ceiling             decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	ParcelTiers         []ParcelTier    `yaml:"parcel_tiers" json:"parcel_tiers"`
}

// ParcelTier grants Parcels installments from MinMonths of work
type ParcelTier struct {
	MinMonths int `yaml:"min_months" json:"min_months"`
	Parcels   int `yaml:"parcels" json:"parcels"`
}

// RequiredMonths returns the minimum tenure for the given count of prior requests
func (u UnemploymentRules) RequiredMonths(previousRequests int) int {
	switch {
	case previousRequests <= 0:
		return u.FirstRequestMonths
	case previousRequests == 1:
		return u.SecondRequestMonths
	default:
		return u.LaterRequestMonths
	}
}

// ParcelsFor returns the number of installments for monthsWorked (0 below every tier)
func (u UnemploymentRules) ParcelsFor(monthsWorked int) int {
	parcels := 0
	for _, tier := range u.ParcelTiers {
		if monthsWorked >= tier.MinMonths && tier.Parcels > parcels {
			parcels = tier.Parcels
		}
	}
	return parcels
}

// Validate checks the rule set for values the calculators cannot work with
func (r *RegulatoryConfig) Validate() error {
	if !r.MinimumWage.IsPositive() {
		return fmt.Errorf("minimum wage must be positive")
	}
	if err := r.INSS.Brackets.Validate(); err != nil {
		return fmt.Errorf("inss: %w", err)
	}
	if err := r.IRRF.Brackets.Validate(); err != nil {
		return fmt.Errorf("irrf: %w", err)
	}
	if r.IRRF.DependentDeduction.IsNegative() {
		return fmt.Errorf("irrf: dependent deduction cannot be negative")
	}
	if !r.FGTS.DepositRate.IsPositive() {
		return fmt.Errorf("fgts: deposit rate must be positive")
	}
	if r.FGTS.MutualWithdrawalShare.IsNegative() || r.FGTS.MutualWithdrawalShare.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("fgts: mutual withdrawal share must be between 0 and 1")
	}
	if r.Notice.BaseDays <= 0 || r.Notice.MaxDays < r.Notice.BaseDays {
		return fmt.Errorf("notice: max days must be at least base days")
	}
	if r.Vacation.DaysPerPeriod <= 0 {
		return fmt.Errorf("vacation: days per period must be positive")
	}
	if len(r.Unemployment.ParcelTiers) == 0 {
		return fmt.Errorf("unemployment: parcel tiers are required")
	}
	if !r.Unemployment.Ceiling.IsPositive() {
		return fmt.Errorf("unemployment: ceiling must be positive")
	}
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultRegulatoryConfig returns the 2024 rule set
func DefaultRegulatoryConfig() RegulatoryConfig {
	return RegulatoryConfig{
		Metadata: RegulatoryMetadata{
			DataYear:    2024,
			LastUpdated: "2024-02-01",
			Description: "Tabelas INSS/IRRF e parâmetros trabalhistas vigentes em 2024",
		},
		MinimumWage: dec("1412.00"),
		INSS: INSSRules{
			Brackets: BracketTable{
				{Min: dec("0"), Max: dec("1412.00"), Rate: dec("0.075")},
				{Min: dec("1412.01"), Max: dec("2666.68"), Rate: dec("0.09")},
				{Min: dec("2666.69"), Max: dec("4000.03"), Rate: dec("0.12")},
				{Min: dec("4000.04"), Max: dec("7786.02"), Rate: dec("0.14")},
			},
		},
		IRRF: IRRFRules{
			Brackets: BracketTable{
				{Min: dec("0"), Max: dec("2259.20"), Rate: dec("0"), Deduction: dec("0")},
				{Min: dec("2259.21"), Max: dec("2826.65"), Rate: dec("0.075"), Deduction: dec("169.44")},
				{Min: dec("2826.66"), Max: dec("3751.05"), Rate: dec("0.15"), Deduction: dec("381.44")},
				{Min: dec("3751.06"), Max: dec("4664.68"), Rate: dec("0.225"), Deduction: dec("662.77")},
				{Min: dec("4664.69"), Rate: dec("0.275"), Deduction: dec("896.00")},
			},
			DependentDeduction: dec("189.59"),
		},
		Premiums: PremiumRules{
			NightShiftUrban:  dec("0.20"),
			NightShiftRural:  dec("0.25"),
			Hazardous:        dec("0.30"),
			UnhealthyMinimum: dec("0.10"),
			UnhealthyMedium:  dec("0.20"),
			UnhealthyMaximum: dec("0.40"),
		},
		FGTS: FGTSRules{
			DepositRate:           dec("0.08"),
			ApprenticeDepositRate: dec("0.02"),
			AnnualYield:           dec("0.03"),
			NoCauseFineRate:       dec("0.40"),
			MutualFineRate:        dec("0.20"),
			MutualWithdrawalShare: dec("0.80"),
		},
		Notice: NoticeRules{
			BaseDays:    30,
			DaysPerYear: 3,
			MaxDays:     90,
		},
		Vacation: VacationRules{
			DaysPerPeriod: 30,
			MaxSoldDays:   10,
		},
		Unemployment: UnemploymentRules{
			FirstRequestMonths:  12,
			SecondRequestMonths: 9,
			LaterRequestMonths:  6,
			ThresholdMultiplier: dec("1.5"),
			BaseRate:            dec("0.80"),
			ExcessRate:          dec("0.50"),
			Ceiling:             dec("2313.74"),
			ParcelTiers: []ParcelTier{
				{MinMonths: 6, Parcels: 3},
				{MinMonths: 12, Parcels: 4},
				{MinMonths: 24, Parcels: 5},
			},
		},
	}
}
