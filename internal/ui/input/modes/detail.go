package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// DetailMode shows one country. The model decides where closing returns to.
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "q", "backspace":
		return []types.Action{types.CloseDetailAction{}}, true
	case "f", " ":
		return []types.Action{types.ToggleFavoriteAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
