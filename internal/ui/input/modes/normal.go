package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.CurrentCountryName() != "" {
			return []types.Action{
				types.OpenDetailAction{},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "/":
		// Edit the current search rather than starting over
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case "L":
		if len(ctx.LanguageOptions()) == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLanguage}}, true

	case "R":
		if len(ctx.RegionOptions()) == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRegion}}, true

	case "c":
		return []types.Action{types.ClearFiltersAction{}}, true

	case "m":
		return []types.Action{types.ShowMoreAction{}}, true

	case "F":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFavorites}}, true

	case "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLogin}}, true

	case "u":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSignup}}, true

	case "o":
		if ctx.LoggedIn() {
			return []types.Action{types.LogoutAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
