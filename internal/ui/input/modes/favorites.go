package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// FavoritesMode is the favorites page: a short list with its own cursor
type FavoritesMode struct {
	index int
}

func NewFavoritesMode() *FavoritesMode {
	return &FavoritesMode{}
}

func (m *FavoritesMode) Name() string {
	return "favorites"
}

func (m *FavoritesMode) Enter(ctx types.Context) []types.Action {
	m.clamp(len(ctx.FavoriteNames()))
	return []types.Action{types.UpdateFavoritesIndexAction{Index: m.index}}
}

func (m *FavoritesMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FavoritesMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	names := ctx.FavoriteNames()
	m.clamp(len(names))

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q", "F", "backspace":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		if m.index > 0 {
			m.index--
		}
		return []types.Action{types.UpdateFavoritesIndexAction{Index: m.index}}, true

	case "down", "j":
		if m.index < len(names)-1 {
			m.index++
		}
		return []types.Action{types.UpdateFavoritesIndexAction{Index: m.index}}, true

	case "enter":
		if len(names) == 0 {
			return nil, true
		}
		return []types.Action{
			types.OpenDetailAction{Name: names[m.index]},
			types.ChangeModeAction{Mode: types.ModeDetail},
		}, true

	case "f", "x", "delete":
		if len(names) == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleFavoriteAction{Name: names[m.index]}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}

func (m *FavoritesMode) clamp(n int) {
	if m.index >= n {
		m.index = n - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

// GetCurrentIndex returns the highlighted favorite
func (m *FavoritesMode) GetCurrentIndex() int {
	return m.index
}
