package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithholdingInput is a monthly payroll amount subject to INSS and IRRF
type WithholdingInput struct {
	GrossSalary     decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`
	Dependents      int             `yaml:"dependents" json:"dependents"`
	OtherDeductions decimal.Decimal `yaml:"other_deductions" json:"other_deductions"` // e.g. court-ordered alimony
}

// PremiumInput drives the night-shift, hazardous and unhealthy calculators.
// NightShiftType is read only by the night-shift calculator and UnhealthyGrade
// only by the unhealthy-duty calculator.
type PremiumInput struct {
	BaseSalary     decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Applies        bool            `yaml:"applies" json:"applies"`
	ExposedHours   decimal.Decimal `yaml:"exposed_hours" json:"exposed_hours"`
	TotalHours     decimal.Decimal `yaml:"total_hours" json:"total_hours"`
	Mode           PremiumMode     `yaml:"mode" json:"mode"`
	NightShiftType NightShiftType  `yaml:"night_shift_type,omitempty" json:"night_shift_type,omitempty"`
	UnhealthyGrade UnhealthyGrade  `yaml:"unhealthy_grade,omitempty" json:"unhealthy_grade,omitempty"`
}

// VacationInput describes a vacation request
type VacationInput struct {
	Salary             decimal.Decimal `yaml:"salary" json:"salary"`
	AverageVariablePay decimal.Decimal `yaml:"average_variable_pay" json:"average_variable_pay"`
	AdmissionDate      time.Time       `yaml:"admission_date" json:"admission_date"`
	VacationStartDate  time.Time       `yaml:"vacation_start_date" json:"vacation_start_date"`
	DaysRequested      int             `yaml:"days_requested" json:"days_requested"`
	DaysSold           int             `yaml:"days_sold" json:"days_sold"`
	DaysAlreadyTaken   int             `yaml:"days_already_taken" json:"days_already_taken"`
	Dependents         int             `yaml:"dependents" json:"dependents"`
}

// ThirteenthInput describes a thirteenth-salary calculation. When MonthsWorked
// is nil the eligible months are derived from the dates with the 15-day rule.
type ThirteenthInput struct {
	Salary             decimal.Decimal `yaml:"salary" json:"salary"`
	AverageVariablePay decimal.Decimal `yaml:"average_variable_pay" json:"average_variable_pay"`
	AdmissionDate      time.Time       `yaml:"admission_date" json:"admission_date"`
	ReferenceDate      time.Time       `yaml:"reference_date" json:"reference_date"`
	MonthsWorked       *int            `yaml:"months_worked,omitempty" json:"months_worked,omitempty"`
	AdvancePaid        decimal.Decimal `yaml:"advance_paid" json:"advance_paid"`
	Dependents         int             `yaml:"dependents" json:"dependents"`
}

// FGTSInput describes a severance-fund projection
type FGTSInput struct {
	Salary               decimal.Decimal `yaml:"salary" json:"salary"`
	CurrentBalance       decimal.Decimal `yaml:"current_balance" json:"current_balance"`
	Months               int             `yaml:"months" json:"months"`
	IncludeThirteenth    bool            `yaml:"include_thirteenth" json:"include_thirteenth"`
	IncludeVacationBonus bool            `yaml:"include_vacation_bonus" json:"include_vacation_bonus"`
	Apprentice           bool            `yaml:"apprentice" json:"apprentice"`
	SalaryGrowthRate     decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"` // annual, as a fraction
}

// RescissionInput describes a contract termination
type RescissionInput struct {
	Salary                  decimal.Decimal     `yaml:"salary" json:"salary"`
	AverageVariablePay      decimal.Decimal     `yaml:"average_variable_pay" json:"average_variable_pay"`
	AdmissionDate           time.Time           `yaml:"admission_date" json:"admission_date"`
	DismissalDate           time.Time           `yaml:"dismissal_date" json:"dismissal_date"`
	Category                TerminationCategory `yaml:"category" json:"category"`
	AccruedVacationPeriods  int                 `yaml:"accrued_vacation_periods" json:"accrued_vacation_periods"`
	PendingThirteenthMonths int                 `yaml:"pending_thirteenth_months" json:"pending_thirteenth_months"`
	ThirteenthAdvancePaid   decimal.Decimal     `yaml:"thirteenth_advance_paid" json:"thirteenth_advance_paid"`
	FGTSBalance             decimal.Decimal     `yaml:"fgts_balance" json:"fgts_balance"`
	ContractEndWithdrawal   bool                `yaml:"contract_end_withdrawal" json:"contract_end_withdrawal"`
	Dependents              int                 `yaml:"dependents" json:"dependents"`
}

// UnemploymentInput describes an unemployment-insurance request.
// When LastSalaries is set its mean replaces AverageSalary.
type UnemploymentInput struct {
	AverageSalary         decimal.Decimal     `yaml:"average_salary" json:"average_salary"`
	LastSalaries          []decimal.Decimal   `yaml:"last_salaries,omitempty" json:"last_salaries,omitempty"`
	MonthsWorked          int                 `yaml:"months_worked" json:"months_worked"`
	PreviousRequests      int                 `yaml:"previous_requests" json:"previous_requests"`
	HasFormalRegistration bool                `yaml:"has_formal_registration" json:"has_formal_registration"`
	DismissalReason       TerminationCategory `yaml:"dismissal_reason" json:"dismissal_reason"`
	CalculationDate       time.Time           `yaml:"calculation_date" json:"calculation_date"`
}

// CalculationRequest selects one calculator and carries its input.
// It is the document shape of request files.
type CalculationRequest struct {
	Calculator   CalculatorKind     `yaml:"calculator" json:"calculator"`
	Withholding  *WithholdingInput  `yaml:"withholding,omitempty" json:"withholding,omitempty"`
	Premium      *PremiumInput      `yaml:"premium,omitempty" json:"premium,omitempty"`
	Vacation     *VacationInput     `yaml:"vacation,omitempty" json:"vacation,omitempty"`
	Thirteenth   *ThirteenthInput   `yaml:"thirteenth,omitempty" json:"thirteenth,omitempty"`
	FGTS         *FGTSInput         `yaml:"fgts,omitempty" json:"fgts,omitempty"`
	Rescission   *RescissionInput   `yaml:"rescission,omitempty" json:"rescission,omitempty"`
	Unemployment *UnemploymentInput `yaml:"unemployment,omitempty" json:"unemployment,omitempty"`
}
