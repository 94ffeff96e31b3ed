package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrydex/internal/ui/input/types"
)

type fakeContext struct {
	index     int
	name      string
	query     string
	loggedIn  bool
	languages []string
	regions   []string
	language  string
	region    string
	favorites []string
}

func (c *fakeContext) CurrentIndex() int          { return c.index }
func (c *fakeContext) TotalItems() int            { return 3 }
func (c *fakeContext) CurrentCountryName() string { return c.name }
func (c *fakeContext) SearchQuery() string        { return c.query }
func (c *fakeContext) LoggedIn() bool             { return c.loggedIn }
func (c *fakeContext) LanguageOptions() []string  { return c.languages }
func (c *fakeContext) RegionOptions() []string    { return c.regions }
func (c *fakeContext) CurrentLanguage() string    { return c.language }
func (c *fakeContext) CurrentRegion() string      { return c.region }
func (c *fakeContext) FavoriteNames() []string    { return c.favorites }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeGuards(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{}

	// No options, not logged in
	for _, k := range []string{"L", "R", "o"} {
		actions, consumed := m.HandleKey(runes(k), ctx)
		assert.True(t, consumed, k)
		assert.Empty(t, actions, k)
	}

	// Enter without a card under the cursor does nothing
	actions, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions)

	// Show more works even with everything on screen
	actions, _ = m.HandleKey(runes("m"), ctx)
	assert.Equal(t, []types.Action{types.ShowMoreAction{}}, actions)

	ctx = &fakeContext{name: "France", loggedIn: true, languages: []string{"French"}, query: "fr"}
	actions, _ = m.HandleKey(runes("m"), ctx)
	assert.Equal(t, []types.Action{types.ShowMoreAction{}}, actions)

	actions, _ = m.HandleKey(runes("o"), ctx)
	assert.Equal(t, []types.Action{types.LogoutAction{}}, actions)

	actions, _ = m.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: "fr"}}, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.OpenDetailAction{}, types.ChangeModeAction{Mode: types.ModeDetail}}, actions)
}

func TestNormalModeDoubleG(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{}

	actions, _ := m.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestPickerCyclesAndWraps(t *testing.T) {
	p := NewRegionPickerMode()
	ctx := &fakeContext{regions: []string{"Asia", "Europe"}, region: "Europe"}

	actions := p.Enter(ctx)
	assert.Equal(t, []types.Action{types.UpdatePickerIndexAction{Index: 2}}, actions)
	assert.Equal(t, []string{AllOption, "Asia", "Europe"}, p.Options())

	actions, _ = p.HandleKey(runes("j"), ctx)
	require.Len(t, actions, 2)
	assert.Equal(t, types.SetRegionAction{Value: ""}, actions[1], "wraps to All")

	actions, _ = p.HandleKey(runes("k"), ctx)
	assert.Equal(t, types.SetRegionAction{Value: "Europe"}, actions[1])

	actions, _ = p.HandleKey(runes("k"), ctx)
	assert.Equal(t, types.SetRegionAction{Value: "Asia"}, actions[1])

	// Esc puts back the selection from when the picker opened
	actions, _ = p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.SetRegionAction{Value: "Europe"}, types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
}

func TestFavoritesModeClampsCursor(t *testing.T) {
	f := NewFavoritesMode()
	ctx := &fakeContext{favorites: []string{"France", "Japan"}}
	f.Enter(ctx)

	f.HandleKey(runes("j"), ctx)
	f.HandleKey(runes("j"), ctx)
	assert.Equal(t, 1, f.GetCurrentIndex())

	actions, _ := f.HandleKey(runes("f"), ctx)
	assert.Equal(t, []types.Action{types.ToggleFavoriteAction{Name: "Japan"}}, actions)

	// Japan was removed; the cursor follows the shorter list
	ctx.favorites = []string{"France"}
	actions, _ = f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.OpenDetailAction{Name: "France"}, types.ChangeModeAction{Mode: types.ModeDetail}}, actions)

	ctx.favorites = nil
	actions, _ = f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions)
}

func TestFormSubmitsTrimmedUsername(t *testing.T) {
	f := NewSignupMode()
	ctx := &fakeContext{}
	f.Enter(ctx)

	for _, r := range " ada " {
		f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, ctx)
	}
	actions, _ := f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{
		types.SubmitFormAction{Mode: types.ModeSignup, Username: "ada"},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)
	assert.Equal(t, "Sign up", f.Title())
}

func TestPromptSwallowsKeys(t *testing.T) {
	p := NewPromptMode()
	actions, consumed := p.HandleKey(runes("j"), &fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{})
	assert.Equal(t, []types.Action{types.DismissPromptAction{}}, actions)
}
