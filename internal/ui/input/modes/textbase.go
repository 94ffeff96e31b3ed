package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt is the label shown before the input
func (m TextInputMode) Prompt() string {
	return m.prompt
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
