package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/output"
	"github.com/rgehrsitz/cltcalc/internal/tui/components"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuistyles"
)

// ResultModel shows the headline figures and the full report of an outcome
type ResultModel struct {
	outcome *domain.CalculationOutcome
	lines   []string
	offset  int
	err     error
	width   int
	height  int
}

// NewResultModel creates a new result scene model
func NewResultModel() *ResultModel {
	return &ResultModel{}
}

// SetOutcome renders the report for outcome and resets scrolling
func (m *ResultModel) SetOutcome(outcome *domain.CalculationOutcome) {
	m.outcome = outcome
	m.offset = 0
	m.lines = nil
	m.err = nil

	report, err := output.BuildReport(outcome)
	if err != nil {
		m.err = err
		return
	}
	m.lines = strings.Split(strings.TrimRight(string(output.RenderText(report)), "\n"), "\n")
}

func (m *ResultModel) Outcome() *domain.CalculationOutcome {
	return m.outcome
}

// SetSize updates the scene dimensions
func (m *ResultModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ResultModel) pageSize() int {
	// cards, borders and help take about 14 rows
	if n := m.height - 14; n > 5 {
		return n
	}
	return 5
}

// Update handles scrolling
func (m *ResultModel) Update(msg tea.Msg) (*ResultModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	maxOffset := len(m.lines) - m.pageSize()
	if maxOffset < 0 {
		maxOffset = 0
	}

	switch {
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("up", "k"))):
		m.offset--
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("down", "j"))):
		m.offset++
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("pgup", "b"))):
		m.offset -= m.pageSize()
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("pgdown", " "))):
		m.offset += m.pageSize()
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("esc"))):
		return m, func() tea.Msg { return tuimsg.BackMsg{} }
	}

	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m, nil
}

// View renders the result scene
func (m *ResultModel) View() string {
	if m.outcome == nil {
		return tuistyles.BorderStyle.Render("Nenhum resultado.\n\nPreencha um formulário e pressione ctrl+s.")
	}
	if m.err != nil {
		return tuistyles.ErrorStyle.Render(m.err.Error())
	}

	end := m.offset + m.pageSize()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	report := tuistyles.BorderStyle.Render(strings.Join(m.lines[m.offset:end], "\n"))

	help := tuistyles.HelpDescStyle.Render(fmt.Sprintf("↑↓ rolar • espaço/b página • esc editar  (%d/%d)", end, len(m.lines)))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(HeadlineMetrics(m.outcome), 4),
		report,
		help,
	)
}

// HeadlineMetrics picks the figures shown as cards above the report
func HeadlineMetrics(outcome *domain.CalculationOutcome) []*components.MetricCard {
	brl := tuistyles.FormatCurrency
	card := components.NewMetricCard

	switch {
	case outcome.Rescission != nil:
		r := outcome.Rescission
		return []*components.MetricCard{
			card("Total bruto", brl(r.GrossTotal)),
			card("Descontos", brl(r.TotalDeductions)),
			card("Total líquido", brl(r.NetTotal)),
			card("Total a receber", brl(r.TotalToReceive)).WithDescription("inclui saque do FGTS"),
		}
	case outcome.Vacation != nil:
		r := outcome.Vacation
		return []*components.MetricCard{
			card("Total bruto", brl(r.GrossTotal)),
			card("Descontos", brl(r.TotalDeductions)),
			card("Total líquido", brl(r.NetTotal)),
		}
	case outcome.Thirteenth != nil:
		r := outcome.Thirteenth
		return []*components.MetricCard{
			card("Total bruto", brl(r.GrossTotal)),
			card("Meses", fmt.Sprintf("%d/12", r.EligibleMonths)),
			card("Total líquido", brl(r.NetTotal)),
		}
	case outcome.ThirteenthInstallment != nil:
		r := outcome.ThirteenthInstallment
		return []*components.MetricCard{
			card("Valor bruto", brl(r.GrossTotal)),
			card("Valor líquido", brl(r.NetTotal)),
		}
	case outcome.FGTS != nil:
		r := outcome.FGTS
		return []*components.MetricCard{
			card("Depósito mensal", brl(r.MonthlyDeposit)),
			card("Total depositado", brl(r.TotalDeposits)),
			card("Rendimento", brl(r.TotalYield)).WithTrend(true, brl(r.TotalYield)),
			card("Saldo projetado", brl(r.ProjectedBalance)),
		}
	case outcome.Premium != nil:
		r := outcome.Premium
		return []*components.MetricCard{
			card("Adicional", brl(r.Premium)),
			card("Salário com adicional", brl(r.TotalWithPremium)),
		}
	case outcome.Unemployment != nil:
		r := outcome.Unemployment
		if !r.IsEligible {
			return []*components.MetricCard{card("Elegível", "Não").WithDescription(fmt.Sprintf("%d motivo(s)", len(r.Reasons)))}
		}
		return []*components.MetricCard{
			card("Parcelas", fmt.Sprintf("%d", r.ParcelCount)),
			card("Valor da parcela", brl(r.ParcelValue)),
			card("Total do benefício", brl(r.TotalBenefit)),
		}
	case outcome.Withholding != nil:
		r := outcome.Withholding
		return []*components.MetricCard{
			card("INSS", brl(r.INSS.Contribution)),
			card("IRRF", brl(r.IRRF.Tax)),
			card("Salário líquido", brl(r.NetSalary)),
		}
	}
	return nil
}
