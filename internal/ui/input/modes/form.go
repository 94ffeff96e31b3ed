package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// FormMode is the login or signup form. Credentials are not checked; any submission succeeds.
type FormMode struct {
	mode   types.Mode
	title  string
	fields []textinput.Model
	focus  int
}

func NewLoginMode() *FormMode {
	return newFormMode(types.ModeLogin, "Log in")
}

func NewSignupMode() *FormMode {
	return newFormMode(types.ModeSignup, "Sign up")
}

func newFormMode(mode types.Mode, title string) *FormMode {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = "Username: "
	user.CharLimit = 64

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "Password: "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 64

	return &FormMode{
		mode:   mode,
		title:  title,
		fields: []textinput.Model{user, pass},
	}
}

func (m *FormMode) Name() string {
	return m.mode.String()
}

func (m *FormMode) Title() string {
	return m.title
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	for i := range m.fields {
		m.fields[i].Reset()
		m.fields[i].Blur()
	}
	m.focus = 0
	m.fields[0].Focus()
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "tab", "down", "shift+tab", "up":
		m.fields[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.fields)
		m.fields[m.focus].Focus()
		return nil, true

	case "enter":
		return []types.Action{
			types.SubmitFormAction{Mode: m.mode, Username: strings.TrimSpace(m.fields[0].Value())},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	m.fields[m.focus], _ = m.fields[m.focus].Update(msg)
	return nil, true
}

// View renders the fields one per line
func (m *FormMode) View() string {
	lines := make([]string, len(m.fields))
	for i := range m.fields {
		lines[i] = m.fields[i].View()
	}
	return strings.Join(lines, "\n")
}
