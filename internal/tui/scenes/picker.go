package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/tui/components"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuistyles"
)

var descriptions = map[domain.CalculatorKind][2]string{
	domain.CalculatorRescission:           {"Verbas rescisórias, FGTS e multa por modalidade de desligamento.", "CLT, arts. 477 a 487"},
	domain.CalculatorVacation:             {"Férias com 1/3 constitucional e abono pecuniário.", "CLT, arts. 129 a 145"},
	domain.CalculatorThirteenth:           {"Décimo terceiro integral ou proporcional.", "Lei 4.090/1962"},
	domain.CalculatorThirteenthAdvance:    {"Primeira parcela do 13º, sem descontos.", "Lei 4.749/1965"},
	domain.CalculatorThirteenthComplement: {"Segunda parcela do 13º com INSS e IRRF.", "Lei 4.749/1965"},
	domain.CalculatorFGTS:                 {"Depósitos mensais, rendimento e projeção de saldo.", "Lei 8.036/1990"},
	domain.CalculatorNightShift:           {"Adicional noturno urbano ou rural.", "CLT, art. 73"},
	domain.CalculatorHazardous:            {"Adicional de periculosidade de 30% do salário.", "CLT, art. 193"},
	domain.CalculatorUnhealthy:            {"Adicional de insalubridade sobre o salário mínimo.", "CLT, art. 192"},
	domain.CalculatorUnemployment:         {"Elegibilidade e parcelas do seguro-desemprego.", "Lei 7.998/1990"},
	domain.CalculatorWithholding:          {"Desconto de INSS e IRRF sobre um salário.", "Lei 8.212/1991"},
}

// PickerModel lists the calculators
type PickerModel struct {
	cards         []*components.CalculatorCard
	selectedIndex int
	width         int
	height        int
}

// NewPickerModel creates a picker over every calculator
func NewPickerModel() *PickerModel {
	m := &PickerModel{}
	for _, kind := range domain.AllCalculators {
		d := descriptions[kind]
		m.cards = append(m.cards, components.NewCalculatorCard(kind).
			WithDescription(d[0]).
			WithLegalBasis(d[1]))
	}
	return m
}

// SetSize updates the model dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted calculator
func (m *PickerModel) Selected() domain.CalculatorKind {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.cards) {
		return m.cards[m.selectedIndex].Kind
	}
	return ""
}

// Update handles messages for the picker scene
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.cards)-1 {
			m.selectedIndex++
		}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = len(m.cards) - 1
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("enter"))):
		kind := m.Selected()
		return m, func() tea.Msg { return tuimsg.CalculatorSelectedMsg{Calculator: kind} }
	}
	return m, nil
}

// View renders the list with the highlighted calculator's card beside it
func (m *PickerModel) View() string {
	list := tuistyles.BorderStyle.Render(components.CalculatorList(m.cards, m.selectedIndex))

	var card string
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.cards) {
		card = m.cards[m.selectedIndex].SetSelected(true).Render()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", card)
}
