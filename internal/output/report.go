package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/rgehrsitz/cltcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// Section headings, in report order
const (
	SectionInputs      = "DADOS INFORMADOS"
	SectionCalculation = "CÁLCULO"
	SectionResult      = "RESULTADO"
	SectionNotes       = "OBSERVAÇÕES"
	SectionLegal       = "FUNDAMENTAÇÃO LEGAL"
)

// Field is one labeled value of a report section
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is the flat textual rendering of a calculation result. Every
// formatter renders the same Report, so section order and labels are shared.
type Report struct {
	Title       string                `json:"title"`
	Calculator  domain.CalculatorKind `json:"calculator"`
	ServiceTime string                `json:"service_time,omitempty"`
	Inputs      []Field               `json:"inputs"`
	Calculation []domain.Formula      `json:"calculation"`
	Result      []Field               `json:"result"`
	Notes       []string              `json:"notes,omitempty"`
	LegalBasis  []string              `json:"legal_basis"`
}

func (r *Report) input(label, value string) {
	r.Inputs = append(r.Inputs, Field{Label: label, Value: value})
}

func (r *Report) result(label, value string) {
	r.Result = append(r.Result, Field{Label: label, Value: value})
}

func (r *Report) details(d domain.Details) {
	r.ServiceTime = d.ServiceTime
	r.Calculation = append(r.Calculation, d.Formulas...)
	r.Notes = append(r.Notes, d.Notes...)
	r.LegalBasis = append(r.LegalBasis, d.LegalBasis...)
}

// BuildReport turns a dispatched outcome into its report
func BuildReport(outcome *domain.CalculationOutcome) (*Report, error) {
	if outcome == nil {
		return nil, fmt.Errorf("nil outcome")
	}

	report := &Report{
		Title:      "CÁLCULO DE " + strings.ToUpper(outcome.Calculator.Title()),
		Calculator: outcome.Calculator,
	}

	switch {
	case outcome.Withholding != nil:
		buildWithholding(report, outcome.Withholding)
	case outcome.Premium != nil:
		buildPremium(report, outcome.Premium)
	case outcome.Vacation != nil:
		buildVacation(report, outcome.Vacation)
	case outcome.Thirteenth != nil:
		buildThirteenth(report, outcome.Thirteenth)
	case outcome.ThirteenthInstallment != nil:
		buildInstallment(report, outcome.ThirteenthInstallment)
	case outcome.FGTS != nil:
		buildFGTS(report, outcome.FGTS)
	case outcome.Rescission != nil:
		buildRescission(report, outcome.Rescission)
	case outcome.Unemployment != nil:
		buildUnemployment(report, outcome.Unemployment)
	default:
		return nil, fmt.Errorf("outcome for %q carries no result", outcome.Calculator)
	}
	return report, nil
}

func buildWithholding(r *Report, res *domain.WithholdingResult) {
	in := res.Input
	r.input("Salário bruto", FormatCurrency(in.GrossSalary))
	r.input("Dependentes", strconv.Itoa(in.Dependents))
	if in.OtherDeductions.IsPositive() {
		r.input("Outras deduções", FormatCurrency(in.OtherDeductions))
	}
	r.details(res.Details)

	r.result("Salário bruto", FormatCurrency(in.GrossSalary))
	r.result("INSS", FormatCurrency(res.INSS.Contribution))
	r.result("Alíquota efetiva INSS", FormatPercentage(res.INSS.EffectiveRate))
	r.result("IRRF", FormatCurrency(res.IRRF.Tax))
	r.result("Total de descontos", FormatCurrency(res.TotalDeductions))
	r.result("Salário líquido", FormatCurrency(res.NetSalary))
}

func buildPremium(r *Report, res *domain.PremiumResult) {
	in := res.Input
	r.input("Salário base", FormatCurrency(in.BaseSalary))
	r.input("Exposição", yesNo(in.Applies))
	if in.TotalHours.IsPositive() {
		r.input("Horas expostas", in.ExposedHours.String()+" de "+in.TotalHours.String())
	}
	switch res.Kind {
	case domain.PremiumNightShift:
		shift := "Urbano"
		if in.NightShiftType == domain.NightShiftRural {
			shift = "Rural"
		}
		r.input("Tipo de trabalho noturno", shift)
	case domain.PremiumUnhealthy:
		grade := in.UnhealthyGrade
		if grade == "" {
			grade = domain.UnhealthyMinimum
		}
		r.input("Grau de insalubridade", grade.Label())
	}
	r.details(res.Details)

	r.result("Base de cálculo", FormatCurrency(res.CalculationBase))
	r.result("Alíquota", FormatPercentage(res.Rate))
	r.result("Valor do adicional", FormatCurrency(res.Premium))
	r.result("Salário com adicional", FormatCurrency(res.TotalWithPremium))
}

func buildVacation(r *Report, res *domain.VacationResult) {
	in := res.Input
	r.input("Salário", FormatCurrency(in.Salary))
	if in.AverageVariablePay.IsPositive() {
		r.input("Média de variáveis", FormatCurrency(in.AverageVariablePay))
	}
	r.input("Data de admissão", formatDate(in.AdmissionDate))
	r.input("Início das férias", formatDate(in.VacationStartDate))
	r.input("Dias de gozo", strconv.Itoa(in.DaysRequested))
	r.input("Dias vendidos (abono)", strconv.Itoa(in.DaysSold))
	r.input("Dias já gozados", strconv.Itoa(in.DaysAlreadyTaken))
	r.details(res.Details)

	r.result("Dias adquiridos", strconv.Itoa(res.EarnedDays))
	r.result("Dias disponíveis", strconv.Itoa(res.AvailableDays))
	r.result("Férias", FormatCurrency(res.VacationPay))
	r.result("1/3 constitucional", FormatCurrency(res.VacationBonus))
	if in.DaysSold > 0 {
		r.result("Abono pecuniário", FormatCurrency(res.SoldDaysPay))
		r.result("1/3 sobre abono", FormatCurrency(res.SoldDaysBonus))
	}
	totals(r, res.GrossTotal, res.INSS, res.IRRF, res.TotalDeductions, res.NetTotal)
}

func buildThirteenth(r *Report, res *domain.ThirteenthResult) {
	thirteenthInputs(r, res.Input)
	r.details(res.Details)

	r.result("Meses considerados", strconv.Itoa(res.EligibleMonths))
	if res.AdvanceDeduction.IsPositive() {
		r.result("Adiantamento descontado", FormatCurrency(res.AdvanceDeduction))
	}
	totals(r, res.GrossTotal, res.INSS, res.IRRF, res.TotalDeductions, res.NetTotal)
}

func buildInstallment(r *Report, res *domain.ThirteenthInstallmentResult) {
	thirteenthInputs(r, res.Input)
	r.details(res.Details)

	r.result("Parcela", strconv.Itoa(res.Installment)+"ª")
	r.result("Meses considerados", strconv.Itoa(res.EligibleMonths))
	r.result("13º integral", FormatCurrency(res.FullThirteenth))
	if res.Installment == 2 {
		r.result("Adiantamento (1ª parcela)", FormatCurrency(res.AdvancePaid))
	}
	totals(r, res.GrossTotal, res.INSS, res.IRRF, res.TotalDeductions, res.NetTotal)
}

func thirteenthInputs(r *Report, in domain.ThirteenthInput) {
	r.input("Salário", FormatCurrency(in.Salary))
	if in.AverageVariablePay.IsPositive() {
		r.input("Média de variáveis", FormatCurrency(in.AverageVariablePay))
	}
	if !in.AdmissionDate.IsZero() {
		r.input("Data de admissão", formatDate(in.AdmissionDate))
	}
	if !in.ReferenceDate.IsZero() {
		r.input("Data de referência", formatDate(in.ReferenceDate))
	}
	if in.MonthsWorked != nil {
		r.input("Meses trabalhados", strconv.Itoa(*in.MonthsWorked))
	}
	if in.AdvancePaid.IsPositive() {
		r.input("Adiantamento pago", FormatCurrency(in.AdvancePaid))
	}
}

func buildFGTS(r *Report, res *domain.FGTSResult) {
	in := res.Input
	r.input("Salário", FormatCurrency(in.Salary))
	r.input("Saldo atual", FormatCurrency(in.CurrentBalance))
	r.input("Período", strconv.Itoa(in.Months)+" meses")
	r.input("Incluir 13º", yesNo(in.IncludeThirteenth))
	r.input("Incluir 1/3 de férias", yesNo(in.IncludeVacationBonus))
	if in.Apprentice {
		r.input("Aprendiz", yesNo(true))
	}
	if !in.SalaryGrowthRate.IsZero() {
		r.input("Reajuste salarial anual", FormatPercentage(money.Percent(in.SalaryGrowthRate)))
	}
	r.details(res.Details)

	r.result("Alíquota de depósito", FormatPercentage(res.DepositRate))
	r.result("Depósito mensal", FormatCurrency(res.MonthlyDeposit))
	r.result("Total depositado", FormatCurrency(res.TotalDeposits))
	r.result("Rendimentos", FormatCurrency(res.TotalYield))
	r.result("Saldo projetado", FormatCurrency(res.ProjectedBalance))
	for _, s := range res.Scenarios {
		r.result("Saque - "+s.Label, FormatCurrency(s.Total))
	}
	for _, y := range res.YearlyGrowth {
		r.result(fmt.Sprintf("Saldo ao fim do ano %d", y.Year), FormatCurrency(y.EndingBalance))
	}
}

func buildRescission(r *Report, res *domain.RescissionResult) {
	in := res.Input
	r.input("Salário", FormatCurrency(in.Salary))
	if in.AverageVariablePay.IsPositive() {
		r.input("Média de variáveis", FormatCurrency(in.AverageVariablePay))
	}
	r.input("Data de admissão", formatDate(in.AdmissionDate))
	r.input("Data de desligamento", formatDate(in.DismissalDate))
	r.input("Modalidade", in.Category.Label())
	if in.AccruedVacationPeriods > 0 {
		r.input("Férias vencidas (períodos)", strconv.Itoa(in.AccruedVacationPeriods))
	}
	if in.PendingThirteenthMonths > 0 {
		r.input("13º pendente (meses)", strconv.Itoa(in.PendingThirteenthMonths))
	}
	r.input("Saldo FGTS", FormatCurrency(in.FGTSBalance))
	r.details(res.Details.Details)

	for _, item := range res.Components() {
		if item.Amount.IsZero() {
			continue
		}
		r.result(item.Label, FormatCurrency(item.Amount))
	}
	r.result("Total bruto", FormatCurrency(res.GrossTotal))
	r.result("INSS", FormatCurrency(res.INSS.Contribution))
	r.result("IRRF", FormatCurrency(res.IRRF.Tax))
	if res.ThirteenthAdvance.IsPositive() {
		r.result("Adiantamento de 13º", FormatCurrency(res.ThirteenthAdvance))
	}
	r.result("Total de descontos", FormatCurrency(res.TotalDeductions))
	r.result("Total líquido", FormatCurrency(res.NetTotal))
	r.result("Saque FGTS", FormatCurrency(res.FGTSWithdrawable))
	r.result("Total a receber", FormatCurrency(res.TotalToReceive))
	r.result("Direito à multa do FGTS", yesNo(res.Details.EligibleForFGTSFine))
	r.result("Direito ao seguro-desemprego", yesNo(res.Details.EligibleForUnemploymentInsurance))
}

func buildUnemployment(r *Report, res *domain.UnemploymentResult) {
	in := res.Input
	if len(in.LastSalaries) > 0 {
		for i, s := range in.LastSalaries {
			r.input(fmt.Sprintf("Salário %d", i+1), FormatCurrency(s))
		}
	} else {
		r.input("Média salarial", FormatCurrency(in.AverageSalary))
	}
	r.input("Meses trabalhados", strconv.Itoa(in.MonthsWorked))
	r.input("Solicitações anteriores", strconv.Itoa(in.PreviousRequests))
	r.input("Carteira assinada", yesNo(in.HasFormalRegistration))
	r.input("Motivo do desligamento", in.DismissalReason.Label())
	r.input("Data do cálculo", formatDate(in.CalculationDate))
	r.details(res.Details)

	r.result("Elegível", yesNo(res.IsEligible))
	for _, reason := range res.Reasons {
		r.result("Motivo", reason)
	}
	if !res.IsEligible {
		return
	}
	r.result("Quantidade de parcelas", strconv.Itoa(res.ParcelCount))
	r.result("Valor da parcela", FormatCurrency(res.ParcelValue))
	r.result("Total do benefício", FormatCurrency(res.TotalBenefit))
	for _, p := range res.Parcels {
		r.result(fmt.Sprintf("Parcela %d (%s)", p.Index, p.DueMonth), FormatCurrency(p.Amount))
	}
}

func totals(r *Report, gross decimal.Decimal, inss domain.INSSResult, irrf domain.IRRFResult, deductions, net decimal.Decimal) {
	r.result("Total bruto", FormatCurrency(gross))
	r.result("INSS", FormatCurrency(inss.Contribution))
	r.result("IRRF", FormatCurrency(irrf.Tax))
	r.result("Total de descontos", FormatCurrency(deductions))
	r.result("Total líquido", FormatCurrency(net))
}

// FormatCurrency formats a decimal as R$ currency
func FormatCurrency(amount decimal.Decimal) string {
	return money.FormatBRL(amount)
}

// FormatPercentage formats a percent-unit decimal
func FormatPercentage(amount decimal.Decimal) string {
	return money.FormatPercent(amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return dateutil.FormatDate(t)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
