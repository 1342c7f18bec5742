package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/cltcalc/internal/tui/tuistyles"
)

var (
	keyNext   = key.NewBinding(key.WithKeys("tab", "down"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"))
	keySubmit = key.NewBinding(key.WithKeys("ctrl+s"))
	keyEnter  = key.NewBinding(key.WithKeys("enter"))
	keyBack   = key.NewBinding(key.WithKeys("esc"))
)

// FormModel edits the inputs of one calculator
type FormModel struct {
	calculator domain.CalculatorKind
	specs      []FieldSpec
	inputs     []textinput.Model
	focused    int
	err        error
	width      int
	height     int
}

// NewFormModel creates an empty form; SetCalculator fills it
func NewFormModel() *FormModel {
	return &FormModel{}
}

// SetCalculator rebuilds the inputs for kind, keeping values typed for
// fields the previous calculator shared
func (m *FormModel) SetCalculator(kind domain.CalculatorKind) {
	previous := m.Values()

	m.calculator = kind
	m.specs = FieldsFor(kind)
	m.inputs = make([]textinput.Model, len(m.specs))
	m.focused = 0
	m.err = nil

	for i, spec := range m.specs {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		if spec.Default != "" {
			ti.Placeholder = spec.Default
		}
		ti.CharLimit = 24
		ti.Width = 24
		if v, ok := previous[spec.Key]; ok {
			ti.SetValue(v)
		}
		m.inputs[i] = ti
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

// Calculator returns the calculator being edited
func (m *FormModel) Calculator() domain.CalculatorKind {
	return m.calculator
}

// SetValue fills the field with the given key
func (m *FormModel) SetValue(key, value string) {
	for i, spec := range m.specs {
		if spec.Key == key {
			m.inputs[i].SetValue(value)
			return
		}
	}
}

// Values returns the raw text of every non-empty field
func (m *FormModel) Values() map[string]string {
	values := map[string]string{}
	for i, spec := range m.specs {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			values[spec.Key] = v
		}
	}
	return values
}

// SetError shows a validation or calculation error under the form
func (m *FormModel) SetError(err error) {
	m.err = err
}

func (m *FormModel) Err() error {
	return m.err
}

// SetSize updates the model dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyBack):
			return m, func() tea.Msg { return tuimsg.BackMsg{} }

		case key.Matches(msg, keyNext):
			m.focus(m.focused + 1)
			return m, textinput.Blink

		case key.Matches(msg, keyPrev):
			m.focus(m.focused - 1)
			return m, textinput.Blink

		case key.Matches(msg, keySubmit):
			return m, m.submit()

		case key.Matches(msg, keyEnter):
			if m.focused == len(m.inputs)-1 {
				return m, m.submit()
			}
			m.focus(m.focused + 1)
			return m, textinput.Blink
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) focus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// submit builds the request; parse errors stay on the form
func (m *FormModel) submit() tea.Cmd {
	req, err := BuildRequest(m.calculator, m.Values())
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	return func() tea.Msg { return tuimsg.SubmitRequestMsg{Request: req} }
}

// View renders the form scene
func (m *FormModel) View() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(m.calculator.Title()))
	content.WriteString("\n\n")

	for i, spec := range m.specs {
		labelStyle := tuistyles.FieldLabelStyle
		if i == m.focused {
			labelStyle = tuistyles.FieldFocusedLabelStyle
		}
		label := spec.Label
		if spec.Required {
			label += " *"
		}
		content.WriteString(labelStyle.Render(label))
		content.WriteString(m.inputs[i].View())
		content.WriteString("\n")
	}

	if m.err != nil {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("tab/↑↓ navegar • enter próximo • ctrl+s calcular • esc voltar"))

	return tuistyles.BorderStyle.Render(content.String())
}
