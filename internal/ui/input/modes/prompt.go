package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// PromptMode blocks input until the message is acknowledged
type PromptMode struct{}

func NewPromptMode() *PromptMode {
	return &PromptMode{}
}

func (m *PromptMode) Name() string {
	return "prompt"
}

func (m *PromptMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PromptMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PromptMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", "esc", " ", "y", "Y", "o", "O", "q":
		return []types.Action{types.DismissPromptAction{}}, true
	}
	// Swallow everything else while the prompt is up
	return nil, true
}
