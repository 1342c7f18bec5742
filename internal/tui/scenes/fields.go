package scenes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// FieldKind decides how a form value is parsed
type FieldKind int

const (
	FieldMoney FieldKind = iota
	FieldInt
	FieldDate
	FieldFlag
	FieldChoice
	FieldRate
)

// FieldSpec describes one form input
type FieldSpec struct {
	Key         string
	Label       string
	Kind        FieldKind
	Required    bool
	Default     string
	Choices     []string
	Placeholder string
}

func money(key, label string, required bool) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: FieldMoney, Required: required, Placeholder: "0,00"}
}

func integer(key, label string, required bool) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: FieldInt, Required: required, Placeholder: "0"}
}

func date(key, label string, required bool) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: FieldDate, Required: required, Placeholder: "dd/mm/aaaa"}
}

func flag(key, label, def string) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: FieldFlag, Default: def, Placeholder: "s/n"}
}

func choice(key, label, def string, choices ...string) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: FieldChoice, Default: def, Choices: choices,
		Placeholder: strings.Join(choices, "/")}
}

func categoryChoices() []string {
	out := make([]string, len(domain.AllTerminationCategories))
	for i, c := range domain.AllTerminationCategories {
		out[i] = string(c)
	}
	return out
}

// FieldsFor lists the form inputs of a calculator in display order
func FieldsFor(kind domain.CalculatorKind) []FieldSpec {
	premium := []FieldSpec{
		money("base_salary", "Salário base", true),
		flag("applies", "Exposto ao adicional", "s"),
		choice("mode", "Modo", string(domain.PremiumModeFull), string(domain.PremiumModeFull), string(domain.PremiumModeProportional)),
		{Key: "exposed_hours", Label: "Horas expostas", Kind: FieldMoney, Placeholder: "0"},
		{Key: "total_hours", Label: "Horas totais no mês", Kind: FieldMoney, Placeholder: "220"},
	}
	thirteenth := []FieldSpec{
		money("salary", "Salário", true),
		money("average_variable_pay", "Média de variáveis", false),
		integer("months_worked", "Meses trabalhados", false),
		date("admission_date", "Data de admissão", false),
		date("reference_date", "Data de referência", false),
		money("advance_paid", "Adiantamento pago", false),
		integer("dependents", "Dependentes", false),
	}

	switch kind {
	case domain.CalculatorWithholding:
		return []FieldSpec{
			money("gross_salary", "Salário bruto", true),
			integer("dependents", "Dependentes", false),
			money("other_deductions", "Outras deduções", false),
		}
	case domain.CalculatorNightShift:
		return append(premium,
			choice("night_shift_type", "Tipo de trabalho", string(domain.NightShiftUrban), string(domain.NightShiftUrban), string(domain.NightShiftRural)))
	case domain.CalculatorHazardous:
		return premium
	case domain.CalculatorUnhealthy:
		return append(premium,
			choice("unhealthy_grade", "Grau de insalubridade", string(domain.UnhealthyMedium),
				string(domain.UnhealthyMinimum), string(domain.UnhealthyMedium), string(domain.UnhealthyMaximum)))
	case domain.CalculatorVacation:
		return []FieldSpec{
			money("salary", "Salário", true),
			money("average_variable_pay", "Média de variáveis", false),
			date("admission_date", "Data de admissão", true),
			date("vacation_start_date", "Início das férias", true),
			integer("days_requested", "Dias de gozo", true),
			integer("days_sold", "Dias vendidos (abono)", false),
			integer("days_already_taken", "Dias já gozados no período", false),
			integer("dependents", "Dependentes", false),
		}
	case domain.CalculatorThirteenth, domain.CalculatorThirteenthAdvance, domain.CalculatorThirteenthComplement:
		return thirteenth
	case domain.CalculatorFGTS:
		return []FieldSpec{
			money("salary", "Salário", true),
			money("current_balance", "Saldo atual", false),
			integer("months", "Meses de projeção", true),
			flag("include_thirteenth", "Incluir 13º", "n"),
			flag("include_vacation_bonus", "Incluir 1/3 de férias", "n"),
			flag("apprentice", "Aprendiz", "n"),
			{Key: "salary_growth_rate", Label: "Reajuste anual (%)", Kind: FieldRate, Placeholder: "0"},
		}
	case domain.CalculatorRescission:
		return []FieldSpec{
			money("salary", "Salário", true),
			money("average_variable_pay", "Média de variáveis", false),
			date("admission_date", "Data de admissão", true),
			date("dismissal_date", "Data de desligamento", true),
			choice("category", "Modalidade", string(domain.TerminationNoCause), categoryChoices()...),
			integer("accrued_vacation_periods", "Períodos de férias vencidas", false),
			integer("pending_thirteenth_months", "Meses de 13º pendentes", false),
			money("thirteenth_advance_paid", "Adiantamento de 13º pago", false),
			money("fgts_balance", "Saldo do FGTS", false),
			flag("contract_end_withdrawal", "Saque no fim de contrato", "n"),
			integer("dependents", "Dependentes", false),
		}
	case domain.CalculatorUnemployment:
		return []FieldSpec{
			money("average_salary", "Média salarial", true),
			integer("months_worked", "Meses trabalhados", true),
			integer("previous_requests", "Solicitações anteriores", false),
			flag("has_formal_registration", "Carteira assinada", "s"),
			choice("dismissal_reason", "Motivo da dispensa", string(domain.TerminationNoCause), categoryChoices()...),
			date("calculation_date", "Data do cálculo", true),
		}
	}
	return nil
}

// formValues reads typed values out of the raw strings; the first error sticks
type formValues struct {
	specs  map[string]FieldSpec
	values map[string]string
	err    error
}

func newFormValues(kind domain.CalculatorKind, values map[string]string) *formValues {
	specs := map[string]FieldSpec{}
	for _, s := range FieldsFor(kind) {
		specs[s.Key] = s
	}
	return &formValues{specs: specs, values: values}
}

func (f *formValues) raw(key string) string {
	v := strings.TrimSpace(f.values[key])
	if v == "" {
		v = f.specs[key].Default
	}
	if v == "" && f.specs[key].Required && f.err == nil {
		f.err = fmt.Errorf("%s é obrigatório", f.specs[key].Label)
	}
	return v
}

func (f *formValues) fail(key string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("%s: %w", f.specs[key].Label, err)
	}
}

func (f *formValues) money(key string) decimal.Decimal {
	v := f.raw(key)
	if v == "" {
		return decimal.Zero
	}
	d, err := ParseMoney(v)
	if err != nil {
		f.fail(key, err)
	}
	return d
}

func (f *formValues) rate(key string) decimal.Decimal {
	return f.money(key).Div(decimal.NewFromInt(100))
}

func (f *formValues) integer(key string) int {
	v := f.raw(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.fail(key, fmt.Errorf("número inteiro inválido %q", v))
	}
	return n
}

func (f *formValues) optionalInt(key string) *int {
	if strings.TrimSpace(f.values[key]) == "" {
		return nil
	}
	n := f.integer(key)
	return &n
}

func (f *formValues) date(key string) time.Time {
	v := f.raw(key)
	if v == "" {
		return time.Time{}
	}
	t, err := ParseDate(v)
	if err != nil {
		f.fail(key, err)
	}
	return t
}

func (f *formValues) flag(key string) bool {
	v := f.raw(key)
	b, err := ParseFlag(v)
	if err != nil {
		f.fail(key, err)
	}
	return b
}

func (f *formValues) choice(key string) string {
	v := strings.ToLower(f.raw(key))
	for _, c := range f.specs[key].Choices {
		if v == c {
			return v
		}
	}
	f.fail(key, fmt.Errorf("opção inválida %q", v))
	return v
}

// BuildRequest turns raw form values into a calculation request
func BuildRequest(kind domain.CalculatorKind, values map[string]string) (*domain.CalculationRequest, error) {
	f := newFormValues(kind, values)
	req := &domain.CalculationRequest{Calculator: kind}

	switch kind {
	case domain.CalculatorWithholding:
		req.Withholding = &domain.WithholdingInput{
			GrossSalary:     f.money("gross_salary"),
			Dependents:      f.integer("dependents"),
			OtherDeductions: f.money("other_deductions"),
		}
	case domain.CalculatorNightShift, domain.CalculatorHazardous, domain.CalculatorUnhealthy:
		in := &domain.PremiumInput{
			BaseSalary:   f.money("base_salary"),
			Applies:      f.flag("applies"),
			Mode:         domain.PremiumMode(f.choice("mode")),
			ExposedHours: f.money("exposed_hours"),
			TotalHours:   f.money("total_hours"),
		}
		if kind == domain.CalculatorNightShift {
			in.NightShiftType = domain.NightShiftType(f.choice("night_shift_type"))
		}
		if kind == domain.CalculatorUnhealthy {
			in.UnhealthyGrade = domain.UnhealthyGrade(f.choice("unhealthy_grade"))
		}
		req.Premium = in
	case domain.CalculatorVacation:
		req.Vacation = &domain.VacationInput{
			Salary:             f.money("salary"),
			AverageVariablePay: f.money("average_variable_pay"),
			AdmissionDate:      f.date("admission_date"),
			VacationStartDate:  f.date("vacation_start_date"),
			DaysRequested:      f.integer("days_requested"),
			DaysSold:           f.integer("days_sold"),
			DaysAlreadyTaken:   f.integer("days_already_taken"),
			Dependents:         f.integer("dependents"),
		}
	case domain.CalculatorThirteenth, domain.CalculatorThirteenthAdvance, domain.CalculatorThirteenthComplement:
		req.Thirteenth = &domain.ThirteenthInput{
			Salary:             f.money("salary"),
			AverageVariablePay: f.money("average_variable_pay"),
			MonthsWorked:       f.optionalInt("months_worked"),
			AdmissionDate:      f.date("admission_date"),
			ReferenceDate:      f.date("reference_date"),
			AdvancePaid:        f.money("advance_paid"),
			Dependents:         f.integer("dependents"),
		}
	case domain.CalculatorFGTS:
		req.FGTS = &domain.FGTSInput{
			Salary:               f.money("salary"),
			CurrentBalance:       f.money("current_balance"),
			Months:               f.integer("months"),
			IncludeThirteenth:    f.flag("include_thirteenth"),
			IncludeVacationBonus: f.flag("include_vacation_bonus"),
			Apprentice:           f.flag("apprentice"),
			SalaryGrowthRate:     f.rate("salary_growth_rate"),
		}
	case domain.CalculatorRescission:
		req.Rescission = &domain.RescissionInput{
			Salary:                  f.money("salary"),
			AverageVariablePay:      f.money("average_variable_pay"),
			AdmissionDate:           f.date("admission_date"),
			DismissalDate:           f.date("dismissal_date"),
			Category:                domain.TerminationCategory(f.choice("category")),
			AccruedVacationPeriods:  f.integer("accrued_vacation_periods"),
			PendingThirteenthMonths: f.integer("pending_thirteenth_months"),
			ThirteenthAdvancePaid:   f.money("thirteenth_advance_paid"),
			FGTSBalance:             f.money("fgts_balance"),
			ContractEndWithdrawal:   f.flag("contract_end_withdrawal"),
			Dependents:              f.integer("dependents"),
		}
	case domain.CalculatorUnemployment:
		req.Unemployment = &domain.UnemploymentInput{
			AverageSalary:         f.money("average_salary"),
			MonthsWorked:          f.integer("months_worked"),
			PreviousRequests:      f.integer("previous_requests"),
			HasFormalRegistration: f.flag("has_formal_registration"),
			DismissalReason:       domain.TerminationCategory(f.choice("dismissal_reason")),
			CalculationDate:       f.date("calculation_date"),
		}
	default:
		return nil, fmt.Errorf("calculadora desconhecida %q", kind)
	}

	if f.err != nil {
		return nil, f.err
	}
	return req, nil
}

// ParseMoney accepts "1.234,56", "1234,56", "1234.56" and an optional "R$" prefix
func ParseMoney(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q", s)
	}
	return d, nil
}

// ParseDate accepts dd/mm/yyyy or yyyy-mm-dd
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida %q, use dd/mm/aaaa", s)
}

// ParseFlag accepts s/sim/y/yes/true/1 and n/não/nao/no/false/0
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sim", "y", "yes", "true", "1":
		return true, nil
	case "", "n", "não", "nao", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("resposta inválida %q, use s ou n", s)
}
