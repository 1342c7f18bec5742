package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/cltcalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pickerModel.SetSize(msg.Width, msg.Height)
		m.formModel.SetSize(msg.Width, msg.Height)
		m.resultModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case RequestLoadedMsg:
		m.formModel.SetCalculator(msg.Request.Calculator)
		m.loading = true
		return m, calculateCmd(m.calcEngine, m.parser, msg.Request)

	case tuimsg.CalculatorSelectedMsg:
		m.formModel.SetCalculator(msg.Calculator)
		m.previousScene = m.currentScene
		m.currentScene = SceneForm
		return m, textinput.Blink

	case tuimsg.SubmitRequestMsg:
		m.loading = true
		return m, calculateCmd(m.calcEngine, m.parser, msg.Request)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			if m.currentScene == SceneForm {
				m.formModel.SetError(msg.Err)
			} else {
				m.err = msg.Err
			}
			return m, nil
		}
		m.resultModel.SetOutcome(msg.Outcome)
		m.previousScene = m.currentScene
		m.currentScene = SceneResult
		return m, nil

	case tuimsg.BackMsg:
		return m.back(), nil
	}

	return m.updateCurrentScene(msg)
}

// back leaves the current scene: result returns to its form, form to the picker
func (m Model) back() Model {
	switch m.currentScene {
	case SceneResult:
		if outcome := m.resultModel.Outcome(); outcome != nil && m.formModel.Calculator() != outcome.Calculator {
			m.formModel.SetCalculator(outcome.Calculator)
		}
		m.currentScene = SceneForm
	case SceneForm:
		m.currentScene = ScenePicker
	case SceneHelp:
		m.currentScene = m.previousScene
	}
	return m
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses the error screen
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// Letters are form input while editing
	if m.currentScene != SceneForm {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			if m.currentScene != SceneHelp {
				m.previousScene = m.currentScene
				m.currentScene = SceneHelp
			}
			return m, nil
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case ScenePicker:
		m.pickerModel, cmd = m.pickerModel.Update(msg)
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneResult:
		m.resultModel, cmd = m.resultModel.Update(msg)
	case SceneHelp:
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
			return m.back(), nil
		}
	}
	return m, cmd
}
