package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/cltcalc/internal/calculation"
	"github.com/rgehrsitz/cltcalc/internal/config"
	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	calcEngine  *calculation.CalculationEngine
	parser      *config.InputParser
	requestPath string

	pickerModel *scenes.PickerModel
	formModel   *scenes.FormModel
	resultModel *scenes.ResultModel

	err     error
	loading bool
}

// NewModel creates a new application model. A non-empty requestPath is
// loaded and calculated on start.
func NewModel(engine *calculation.CalculationEngine, requestPath string) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene: ScenePicker,
		calcEngine:   engine,
		parser:       config.NewInputParser(),
		requestPath:  requestPath,
		pickerModel:  scenes.NewPickerModel(),
		formModel:    scenes.NewFormModel(),
		resultModel:  scenes.NewResultModel(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.requestPath == "" {
		return nil
	}
	return loadRequestCmd(m.parser, m.requestPath)
}

// loadRequestCmd returns a command that reads a request file
func loadRequestCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		req, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RequestLoadedMsg{Request: req}
	}
}

// calculateCmd validates and runs a request
func calculateCmd(engine *calculation.CalculationEngine, parser *config.InputParser, req *domain.CalculationRequest) tea.Cmd {
	return func() tea.Msg {
		if err := parser.ValidateRequest(req); err != nil {
			return CalculationCompleteMsg{Err: err}
		}
		outcome, err := engine.Run(req)
		return CalculationCompleteMsg{Outcome: outcome, Err: err}
	}
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

func (s Scene) String() string {
	switch s {
	case ScenePicker:
		return "Calculadoras"
	case SceneForm:
		return "Dados"
	case SceneResult:
		return "Resultado"
	case SceneHelp:
		return "Ajuda"
	default:
		return "Desconhecida"
	}
}
