package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuistyles"
)

// CalculatorCard describes one calculator in the picker
type CalculatorCard struct {
	Kind        domain.CalculatorKind
	Title       string
	Description string
	LegalBasis  string
	IsSelected  bool
	Width       int
}

// NewCalculatorCard creates a card titled after the calculator
func NewCalculatorCard(kind domain.CalculatorKind) *CalculatorCard {
	return &CalculatorCard{
		Kind:  kind,
		Title: kind.Title(),
		Width: 56,
	}
}

func (c *CalculatorCard) WithDescription(desc string) *CalculatorCard {
	c.Description = desc
	return c
}

func (c *CalculatorCard) WithLegalBasis(basis string) *CalculatorCard {
	c.LegalBasis = basis
	return c
}

func (c *CalculatorCard) SetSelected(selected bool) *CalculatorCard {
	c.IsSelected = selected
	return c
}

// Render returns the bordered card shown next to the list
func (c *CalculatorCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(c.Title))
	content.WriteString("\n")

	if c.Description != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(c.Description))
		content.WriteString("\n")
	}

	if c.LegalBasis != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true).
			Render(c.LegalBasis))
	}

	var border lipgloss.TerminalColor = tuistyles.ColorBorder
	if c.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(c.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// CalculatorList renders the picker list with a cursor on the selected row
func CalculatorList(cards []*CalculatorCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("Nenhuma calculadora disponível")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix + card.Title)
	}

	return strings.Join(rendered, "\n")
}
