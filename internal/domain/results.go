package domain

import (
	"github.com/shopspring/decimal"
)

// Formula is a human-readable rendering of one calculation step
type Formula struct {
	Label      string `json:"label"`
	Expression string `json:"expression"`
}

// Details carries the descriptive data attached to every result
type Details struct {
	ServiceTime string    `json:"service_time,omitempty"`
	LegalBasis  []string  `json:"legal_basis"`
	Formulas    []Formula `json:"formulas"`
	Notes       []string  `json:"notes,omitempty"`
}

// AddFormula appends a calculation step
func (d *Details) AddFormula(label, expression string) {
	d.Formulas = append(d.Formulas, Formula{Label: label, Expression: expression})
}

// AddNote appends a free-text note
func (d *Details) AddNote(note string) {
	d.Notes = append(d.Notes, note)
}

// BracketPortion is the part of a base taxed inside one INSS bracket
type BracketPortion struct {
	Index   int             `json:"index"`
	From    decimal.Decimal `json:"from"`
	To      decimal.Decimal `json:"to"`
	Rate    decimal.Decimal `json:"rate"` // percent units
	Portion decimal.Decimal `json:"portion"`
	Amount  decimal.Decimal `json:"amount"`
}

// INSSResult is the social-contribution withholding for a base
type INSSResult struct {
	Base          decimal.Decimal  `json:"base"`
	Contribution  decimal.Decimal  `json:"contribution"`
	EffectiveRate decimal.Decimal  `json:"effective_rate"` // percent units
	AtCeiling     bool             `json:"at_ceiling"`
	Brackets      []BracketPortion `json:"brackets"`
}

// IRRFResult is the income-tax withholding for a base
type IRRFResult struct {
	GrossBase          decimal.Decimal `json:"gross_base"`
	DependentDeduction decimal.Decimal `json:"dependent_deduction"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TaxableBase        decimal.Decimal `json:"taxable_base"`
	BracketIndex       int             `json:"bracket_index"`
	Rate               decimal.Decimal `json:"rate"` // percent units
	FixedDeduction     decimal.Decimal `json:"fixed_deduction"`
	Tax                decimal.Decimal `json:"tax"`
	Exempt             bool            `json:"exempt"`
}

// WithholdingResult combines INSS and IRRF over one gross salary
type WithholdingResult struct {
	Input           WithholdingInput `json:"input"`
	INSS            INSSResult       `json:"inss"`
	IRRF            IRRFResult       `json:"irrf"`
	TotalDeductions decimal.Decimal  `json:"total_deductions"`
	NetSalary       decimal.Decimal  `json:"net_salary"`
	Details         Details          `json:"details"`
}

// PremiumResult is the outcome of a premium calculator
type PremiumResult struct {
	Input            PremiumInput    `json:"input"`
	Kind             PremiumKind     `json:"kind"`
	Applied          bool            `json:"applied"`
	CalculationBase  decimal.Decimal `json:"calculation_base"`
	Rate             decimal.Decimal `json:"rate"` // percent units
	Proportion       decimal.Decimal `json:"proportion"`
	Premium          decimal.Decimal `json:"premium"`
	TotalWithPremium decimal.Decimal `json:"total_with_premium"`
	Details          Details         `json:"details"`
}

// VacationResult is the outcome of the vacation calculator
type VacationResult struct {
	Input           VacationInput   `json:"input"`
	EarnedDays      int             `json:"earned_days"`
	AvailableDays   int             `json:"available_days"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	VacationPay     decimal.Decimal `json:"vacation_pay"`
	VacationBonus   decimal.Decimal `json:"vacation_bonus"`
	SoldDaysPay     decimal.Decimal `json:"sold_days_pay"`
	SoldDaysBonus   decimal.Decimal `json:"sold_days_bonus"`
	GrossTotal      decimal.Decimal `json:"gross_total"`
	INSS            INSSResult      `json:"inss"`
	IRRF            IRRFResult      `json:"irrf"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetTotal        decimal.Decimal `json:"net_total"`
	Details         Details         `json:"details"`
}

// ThirteenthResult is the outcome of the full thirteenth-salary calculator
type ThirteenthResult struct {
	Input            ThirteenthInput `json:"input"`
	EligibleMonths   int             `json:"eligible_months"`
	GrossTotal       decimal.Decimal `json:"gross_total"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	INSS             INSSResult      `json:"inss"`
	IRRF             IRRFResult      `json:"irrf"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetTotal         decimal.Decimal `json:"net_total"`
	Details          Details         `json:"details"`
}

// ThirteenthInstallmentResult is one of the two split payments
type ThirteenthInstallmentResult struct {
	Input           ThirteenthInput `json:"input"`
	Installment     int             `json:"installment"`
	EligibleMonths  int             `json:"eligible_months"`
	FullThirteenth  decimal.Decimal `json:"full_thirteenth"`
	GrossTotal      decimal.Decimal `json:"gross_total"`
	AdvancePaid     decimal.Decimal `json:"advance_paid"`
	INSS            INSSResult      `json:"inss"`
	IRRF            IRRFResult      `json:"irrf"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetTotal        decimal.Decimal `json:"net_total"`
	Details         Details         `json:"details"`
}

// FGTSWithdrawalScenario simulates the balance available under one exit path
type FGTSWithdrawalScenario struct {
	Name         string          `json:"name"`
	Label        string          `json:"label"`
	Withdrawable decimal.Decimal `json:"withdrawable"`
	Fine         decimal.Decimal `json:"fine"`
	Total        decimal.Decimal `json:"total"`
	Note         string          `json:"note,omitempty"`
}

// FGTSYear is one row of the salary-growth simulation
type FGTSYear struct {
	Year          int             `json:"year"`
	Salary        decimal.Decimal `json:"salary"`
	Deposits      decimal.Decimal `json:"deposits"`
	Yield         decimal.Decimal `json:"yield"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// FGTSResult is the outcome of the severance-fund projection
type FGTSResult struct {
	Input            FGTSInput                `json:"input"`
	DepositRate      decimal.Decimal          `json:"deposit_rate"` // percent units
	ContributionBase decimal.Decimal          `json:"contribution_base"`
	MonthlyDeposit   decimal.Decimal          `json:"monthly_deposit"`
	MonthlyYield     decimal.Decimal          `json:"monthly_yield"` // percent units
	TotalDeposits    decimal.Decimal          `json:"total_deposits"`
	TotalYield       decimal.Decimal          `json:"total_yield"`
	ProjectedBalance decimal.Decimal          `json:"projected_balance"`
	Scenarios        []FGTSWithdrawalScenario `json:"scenarios"`
	YearlyGrowth     []FGTSYear               `json:"yearly_growth"`
	Details          Details                  `json:"details"`
}

// RescissionDetails extends Details with termination eligibility flags
type RescissionDetails struct {
	Details
	EligibleForFGTSFine              bool `json:"eligible_for_fgts_fine"`
	EligibleForUnemploymentInsurance bool `json:"eligible_for_unemployment_insurance"`
	CanWithdrawFGTS                  bool `json:"can_withdraw_fgts"`
	MonthsOfService                  int  `json:"months_of_service"`
	CompleteYears                    int  `json:"complete_years"`
}

// RescissionResult is the outcome of the termination orchestrator
type RescissionResult struct {
	Input                      RescissionInput   `json:"input"`
	DaysWorkedInMonth          int               `json:"days_worked_in_month"`
	SalaryBalance              decimal.Decimal   `json:"salary_balance"`
	NoticeDays                 int               `json:"notice_days"`
	NoticePay                  decimal.Decimal   `json:"notice_pay"`
	AccruedVacation            decimal.Decimal   `json:"accrued_vacation"`
	AccruedVacationBonus       decimal.Decimal   `json:"accrued_vacation_bonus"`
	ProportionalVacationMonths int               `json:"proportional_vacation_months"`
	ProportionalVacation       decimal.Decimal   `json:"proportional_vacation"`
	ProportionalVacationBonus  decimal.Decimal   `json:"proportional_vacation_bonus"`
	PendingThirteenth          decimal.Decimal   `json:"pending_thirteenth"`
	ThirteenthMonths           int               `json:"thirteenth_months"`
	ProportionalThirteenth     decimal.Decimal   `json:"proportional_thirteenth"`
	FGTSDeposit                decimal.Decimal   `json:"fgts_deposit"`
	FGTSFine                   decimal.Decimal   `json:"fgts_fine"`
	FGTSWithdrawable           decimal.Decimal   `json:"fgts_withdrawable"`
	GrossTotal                 decimal.Decimal   `json:"gross_total"`
	ThirteenthAdvance          decimal.Decimal   `json:"thirteenth_advance"`
	INSS                       INSSResult        `json:"inss"`
	IRRF                       IRRFResult        `json:"irrf"`
	TotalDeductions            decimal.Decimal   `json:"total_deductions"`
	NetTotal                   decimal.Decimal   `json:"net_total"`
	TotalToReceive             decimal.Decimal   `json:"total_to_receive"`
	Details                    RescissionDetails `json:"details"`
}

// LineItem is a labeled amount
type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Components lists every gross component with its label, in report order
func (r *RescissionResult) Components() []LineItem {
	return []LineItem{
		{Label: "Saldo de salário", Amount: r.SalaryBalance},
		{Label: "Aviso prévio indenizado", Amount: r.NoticePay},
		{Label: "Férias vencidas", Amount: r.AccruedVacation},
		{Label: "1/3 sobre férias vencidas", Amount: r.AccruedVacationBonus},
		{Label: "Férias proporcionais", Amount: r.ProportionalVacation},
		{Label: "1/3 sobre férias proporcionais", Amount: r.ProportionalVacationBonus},
		{Label: "13º salário pendente", Amount: r.PendingThirteenth},
		{Label: "13º salário proporcional", Amount: r.ProportionalThirteenth},
		{Label: "Multa FGTS", Amount: r.FGTSFine},
	}
}

// Parcel is one unemployment-insurance installment
type Parcel struct {
	Index    int             `json:"index"`
	Amount   decimal.Decimal `json:"amount"`
	DueMonth string          `json:"due_month"`
}

// UnemploymentResult is the eligibility outcome and payment schedule
type UnemploymentResult struct {
	Input          UnemploymentInput `json:"input"`
	IsEligible     bool              `json:"is_eligible"`
	Reasons        []string          `json:"reasons"`
	RequiredMonths int               `json:"required_months"`
	AverageSalary  decimal.Decimal   `json:"average_salary"`
	ParcelCount    int               `json:"parcel_count"`
	ParcelValue    decimal.Decimal   `json:"parcel_value"`
	TotalBenefit   decimal.Decimal   `json:"total_benefit"`
	Parcels        []Parcel          `json:"parcels"`
	Details        Details           `json:"details"`
}

// CalculationOutcome carries the result of a dispatched CalculationRequest.
// Exactly one result pointer is set, matching Calculator.
type CalculationOutcome struct {
	Calculator            CalculatorKind               `json:"calculator"`
	Withholding           *WithholdingResult           `json:"withholding,omitempty"`
	Premium               *PremiumResult               `json:"premium,omitempty"`
	Vacation              *VacationResult              `json:"vacation,omitempty"`
	Thirteenth            *ThirteenthResult            `json:"thirteenth,omitempty"`
	ThirteenthInstallment *ThirteenthInstallmentResult `json:"thirteenth_installment,omitempty"`
	FGTS                  *FGTSResult                  `json:"fgts,omitempty"`
	Rescission            *RescissionResult            `json:"rescission,omitempty"`
	Unemployment          *UnemploymentResult          `json:"unemployment,omitempty"`
}
