package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render(fmt.Sprintf("Erro: %s\n\nPressione qualquer tecla para continuar...", m.err))
	case m.loading:
		content = BorderStyle.Render("⠋ Calculando...")
	default:
		switch m.currentScene {
		case ScenePicker:
			content = m.pickerModel.View()
		case SceneForm:
			content = m.formModel.View()
		case SceneResult:
			content = m.resultModel.View()
		case SceneHelp:
			content = m.renderHelp()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	breadcrumb := m.currentScene.String()
	if m.currentScene != ScenePicker && m.formModel.Calculator() != "" {
		breadcrumb = fmt.Sprintf("%s / %s", m.formModel.Calculator().Title(), breadcrumb)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("CLTCALC - Cálculos Trabalhistas"),
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case ScenePicker:
		shortcuts = []string{
			formatShortcut("↑↓", "escolher"),
			formatShortcut("enter", "abrir"),
			formatShortcut("?", "ajuda"),
			formatShortcut("q", "sair"),
		}
	case SceneForm:
		shortcuts = []string{
			formatShortcut("ctrl+s", "calcular"),
			formatShortcut("esc", "voltar"),
			formatShortcut("ctrl+c", "sair"),
		}
	default:
		shortcuts = []string{
			formatShortcut("esc", "voltar"),
			formatShortcut("?", "ajuda"),
			formatShortcut("q", "sair"),
		}
	}

	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"↑/↓ k/j", "mover na lista ou rolar o relatório"},
		{"enter", "abrir calculadora / próximo campo"},
		{"tab", "próximo campo"},
		{"shift+tab", "campo anterior"},
		{"ctrl+s", "calcular"},
		{"espaço/b", "página seguinte/anterior do relatório"},
		{"esc", "voltar"},
		{"?", "esta ajuda"},
		{"q/ctrl+c", "sair"},
	}

	var b strings.Builder
	b.WriteString("ATALHOS\n\n")
	for _, r := range rows {
		b.WriteString(HelpKeyStyle.Width(12).Render(r[0]))
		b.WriteString(HelpDescStyle.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\nValores: 1.234,56 ou 1234.56 • Datas: dd/mm/aaaa • Sim/não: s/n")

	return BorderStyle.Render(b.String())
}
