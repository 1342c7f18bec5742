package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a request document. Unknown keys are rejected
// so that misspelled fields do not silently fall back to zero values.
func (ip *InputParser) Parse(data []byte) (*domain.CalculationRequest, error) {
	var request domain.CalculationRequest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateRequest checks the document structure: a known calculator, its
// input section, required fields, ranges, date order and enum membership.
// Legal rules (earned vacation days, tenure) are left to the calculators.
func (ip *InputParser) ValidateRequest(request *domain.CalculationRequest) error {
	if request.Calculator == "" {
		return fmt.Errorf("calculator is required")
	}
	if !request.Calculator.IsValid() {
		return fmt.Errorf("unknown calculator %q", request.Calculator)
	}

	switch request.Calculator {
	case domain.CalculatorWithholding:
		if request.Withholding == nil {
			return missingSection("withholding")
		}
		return ip.validateWithholding(request.Withholding)
	case domain.CalculatorNightShift, domain.CalculatorHazardous, domain.CalculatorUnhealthy:
		if request.Premium == nil {
			return missingSection("premium")
		}
		return ip.validatePremium(request.Calculator, request.Premium)
	case domain.CalculatorVacation:
		if request.Vacation == nil {
			return missingSection("vacation")
		}
		return ip.validateVacation(request.Vacation)
	case domain.CalculatorThirteenth, domain.CalculatorThirteenthAdvance, domain.CalculatorThirteenthComplement:
		if request.Thirteenth == nil {
			return missingSection("thirteenth")
		}
		return ip.validateThirteenth(request.Thirteenth)
	case domain.CalculatorFGTS:
		if request.FGTS == nil {
			return missingSection("fgts")
		}
		return ip.validateFGTS(request.FGTS)
	case domain.CalculatorRescission:
		if request.Rescission == nil {
			return missingSection("rescission")
		}
		return ip.validateRescission(request.Rescission)
	case domain.CalculatorUnemployment:
		if request.Unemployment == nil {
			return missingSection("unemployment")
		}
		return ip.validateUnemployment(request.Unemployment)
	}
	return nil
}

func missingSection(name string) error {
	return fmt.Errorf("%s section is required for this calculator", name)
}

func requirePositive(field string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return fmt.Errorf("%s must be positive", field)
	}
	return nil
}

func requireNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%s cannot be negative", field)
	}
	return nil
}

func (ip *InputParser) validateWithholding(input *domain.WithholdingInput) error {
	if err := requireNonNegative("gross_salary", input.GrossSalary); err != nil {
		return err
	}
	if err := requireNonNegative("other_deductions", input.OtherDeductions); err != nil {
		return err
	}
	if input.Dependents < 0 {
		return fmt.Errorf("dependents cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePremium(kind domain.CalculatorKind, input *domain.PremiumInput) error {
	if err := requireNonNegative("base_salary", input.BaseSalary); err != nil {
		return err
	}
	if !input.Mode.IsValid() {
		return fmt.Errorf("unknown premium mode %q", input.Mode)
	}
	if input.ExposedHours.IsNegative() || input.TotalHours.IsNegative() {
		return fmt.Errorf("hours cannot be negative")
	}
	if input.TotalHours.IsPositive() && input.ExposedHours.GreaterThan(input.TotalHours) {
		return fmt.Errorf("exposed_hours (%s) cannot exceed total_hours (%s)", input.ExposedHours, input.TotalHours)
	}

	switch kind {
	case domain.CalculatorNightShift:
		if input.NightShiftType != "" && !input.NightShiftType.IsValid() {
			return fmt.Errorf("unknown night_shift_type %q", input.NightShiftType)
		}
	case domain.CalculatorUnhealthy:
		if input.UnhealthyGrade != "" && !input.UnhealthyGrade.IsValid() {
			return fmt.Errorf("unknown unhealthy_grade %q", input.UnhealthyGrade)
		}
	}
	return nil
}

func (ip *InputParser) validateVacation(input *domain.VacationInput) error {
	if err := requirePositive("salary", input.Salary); err != nil {
		return err
	}
	if err := requireNonNegative("average_variable_pay", input.AverageVariablePay); err != nil {
		return err
	}
	if input.AdmissionDate.IsZero() {
		return fmt.Errorf("admission_date is required")
	}
	if input.VacationStartDate.IsZero() {
		return fmt.Errorf("vacation_start_date is required")
	}
	if input.VacationStartDate.Before(input.AdmissionDate) {
		return fmt.Errorf("vacation_start_date cannot precede admission_date")
	}
	if input.DaysRequested < 0 || input.DaysSold < 0 || input.DaysAlreadyTaken < 0 || input.Dependents < 0 {
		return fmt.Errorf("day counts and dependents cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateThirteenth(input *domain.ThirteenthInput) error {
	if err := requirePositive("salary", input.Salary); err != nil {
		return err
	}
	if err := requireNonNegative("advance_paid", input.AdvancePaid); err != nil {
		return err
	}
	if input.MonthsWorked != nil {
		if *input.MonthsWorked < 0 || *input.MonthsWorked > 12 {
			return fmt.Errorf("months_worked must be between 0 and 12")
		}
	} else if input.ReferenceDate.IsZero() {
		return fmt.Errorf("either months_worked or reference_date is required")
	}
	if !input.ReferenceDate.IsZero() && input.ReferenceDate.Before(input.AdmissionDate) {
		return fmt.Errorf("reference_date cannot precede admission_date")
	}
	if input.Dependents < 0 {
		return fmt.Errorf("dependents cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateFGTS(input *domain.FGTSInput) error {
	if err := requirePositive("salary", input.Salary); err != nil {
		return err
	}
	if err := requireNonNegative("current_balance", input.CurrentBalance); err != nil {
		return err
	}
	if input.Months <= 0 {
		return fmt.Errorf("months must be positive")
	}
	return nil
}

func (ip *InputParser) validateRescission(input *domain.RescissionInput) error {
	if err := requirePositive("salary", input.Salary); err != nil {
		return err
	}
	if input.AdmissionDate.IsZero() || input.DismissalDate.IsZero() {
		return fmt.Errorf("admission_date and dismissal_date are required")
	}
	if input.DismissalDate.Before(input.AdmissionDate) {
		return fmt.Errorf("dismissal_date cannot precede admission_date")
	}
	if !input.Category.IsValid() {
		return fmt.Errorf("unknown termination category %q", input.Category)
	}
	if input.PendingThirteenthMonths < 0 || input.PendingThirteenthMonths > 12 {
		return fmt.Errorf("pending_thirteenth_months must be between 0 and 12")
	}
	if input.AccruedVacationPeriods < 0 || input.Dependents < 0 {
		return fmt.Errorf("accrued_vacation_periods and dependents cannot be negative")
	}
	if err := requireNonNegative("fgts_balance", input.FGTSBalance); err != nil {
		return err
	}
	return requireNonNegative("thirteenth_advance_paid", input.ThirteenthAdvancePaid)
}

func (ip *InputParser) validateUnemployment(input *domain.UnemploymentInput) error {
	if input.AverageSalary.IsZero() && len(input.LastSalaries) == 0 {
		return fmt.Errorf("average_salary or last_salaries is required")
	}
	if err := requireNonNegative("average_salary", input.AverageSalary); err != nil {
		return err
	}
	for i, salary := range input.LastSalaries {
		if err := requireNonNegative(fmt.Sprintf("last_salaries[%d]", i), salary); err != nil {
			return err
		}
	}
	if input.MonthsWorked < 0 || input.PreviousRequests < 0 {
		return fmt.Errorf("months_worked and previous_requests cannot be negative")
	}
	if input.DismissalReason != "" && !input.DismissalReason.IsValid() {
		return fmt.Errorf("unknown dismissal_reason %q", input.DismissalReason)
	}
	if input.CalculationDate.IsZero() {
		return fmt.Errorf("calculation_date is required")
	}
	return nil
}
