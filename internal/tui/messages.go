package tui

import (
	"github.com/rgehrsitz/cltcalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	ScenePicker Scene = iota
	SceneForm
	SceneResult
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// RequestLoadedMsg carries a request file read at startup
type RequestLoadedMsg struct {
	Request *domain.CalculationRequest
}

// CalculationCompleteMsg signals a calculation has finished
type CalculationCompleteMsg struct {
	Outcome *domain.CalculationOutcome
	Err     error
}
