package ui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrydex/internal/app"
	"countrydex/internal/domain"
	"countrydex/internal/eventbus"
	"countrydex/internal/session"
	inputtypes "countrydex/internal/ui/input/types"
)

func testCatalog() []domain.Country {
	return []domain.Country{
		{Name: "France", Capital: "Paris", Region: "Europe", Languages: map[string]string{"fr": "French"}, Population: 67391582},
		{Name: "Germany", Capital: "Berlin", Region: "Europe", Languages: map[string]string{"de": "German"}},
		{Name: "Japan", Capital: "Tokyo", Region: "Asia", Languages: map[string]string{"ja": "Japanese"}},
	}
}

func newTestModel(t *testing.T, countries []domain.Country) *Model {
	t.Helper()
	m := NewModel(app.NewController(app.Settings{}, nil, nil, nil), nil, Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if countries != nil {
		m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Countries: countries}})
	}
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func visibleNames(m *Model) []string {
	var out []string
	for _, c := range m.controller.Visible() {
		out = append(out, c.Name)
	}
	return out
}

func toastTexts(m *Model) []string {
	var out []string
	for _, t := range m.toasts {
		out = append(out, t.text)
	}
	return out
}

func TestSearchFiltersWhileTyping(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "/")
	require.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	typeText(m, "ja")
	assert.Equal(t, "ja", m.controller.State().Criteria.Query)
	assert.Equal(t, []string{"Japan"}, visibleNames(m))

	press(m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Empty(t, m.controller.State().Criteria.Query)
	assert.Len(t, visibleNames(m), 3)
}

func TestSearchEnterKeepsQuery(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "/")
	typeText(m, "GER")
	press(m, "enter")

	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "GER", m.controller.State().Criteria.Query)
	assert.Equal(t, []string{"Germany"}, visibleNames(m))

	// Reopening the search starts from the current query
	press(m, "/")
	assert.Equal(t, "GER", m.inputHandler.TextInput().Value())
}

func TestLanguagePickerAppliesImmediately(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "L")
	require.Equal(t, inputtypes.ModeLanguage, m.inputHandler.CurrentMode())
	assert.Equal(t, []string{"All", "French", "German", "Japanese"}, m.inputHandler.Picker().Options())

	press(m, "j")
	assert.Equal(t, "French", m.controller.State().Criteria.Language)
	assert.Equal(t, []string{"France"}, visibleNames(m))

	// Esc restores what was selected before the picker opened
	press(m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Empty(t, m.controller.State().Criteria.Language)
}

func TestRegionPickerAndClear(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "R", "j", "enter")
	assert.Equal(t, "Asia", m.controller.State().Criteria.Region)
	assert.Equal(t, []string{"Japan"}, visibleNames(m))

	press(m, "c")
	assert.False(t, m.controller.State().Criteria.Active())
	assert.Len(t, visibleNames(m), 3)
}

func TestFavoriteWhileLoggedOutPrompts(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "enter")
	require.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())
	assert.Equal(t, "France", m.controller.State().Selected)

	press(m, "f")
	assert.Equal(t, inputtypes.ModePrompt, m.inputHandler.CurrentMode())
	assert.Equal(t, app.LoginRequiredMessage, m.prompt)
	assert.Contains(t, m.View(), app.LoginRequiredMessage)
	assert.Empty(t, m.controller.State().FavoriteNames)

	// Other keys are swallowed while the prompt is up
	press(m, "j")
	assert.Equal(t, inputtypes.ModePrompt, m.inputHandler.CurrentMode())

	press(m, "enter")
	assert.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())
	assert.Empty(t, m.prompt)

	press(m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Empty(t, m.controller.State().Selected)
}

func TestLoginThenFavorite(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "i")
	require.Equal(t, inputtypes.ModeLogin, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Log in")

	typeText(m, "bob")
	press(m, "tab")
	typeText(m, "secret")
	press(m, "enter")

	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, domain.LoggedIn, m.controller.State().Session)
	assert.Equal(t, []string{session.LoginNotice}, toastTexts(m))

	press(m, "enter", "f")
	assert.Equal(t, []string{"France"}, m.controller.State().FavoriteNames)
	assert.Contains(t, toastTexts(m), "France has been added to favorites.")
	assert.Contains(t, m.View(), "Unfavorite")

	press(m, "esc", "F")
	require.Equal(t, inputtypes.ModeFavorites, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Favorite Countries")

	// Details opened from the favorites page return to it
	press(m, "enter")
	assert.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())
	press(m, "esc")
	assert.Equal(t, inputtypes.ModeFavorites, m.inputHandler.CurrentMode())

	press(m, "f")
	assert.Empty(t, m.controller.State().FavoriteNames)
	assert.Contains(t, m.View(), "No favorites yet")
}

func TestSignupAndLogout(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "u")
	require.Equal(t, inputtypes.ModeSignup, m.inputHandler.CurrentMode())
	press(m, "enter")
	assert.Equal(t, domain.LoggedIn, m.controller.State().Session)
	assert.Contains(t, toastTexts(m), session.SignupNotice)

	press(m, "o")
	assert.Equal(t, domain.LoggedOut, m.controller.State().Session)
	assert.Contains(t, toastTexts(m), session.LogoutNotice)

	// Logging out again does nothing
	before := len(m.toasts)
	press(m, "o")
	assert.Len(t, m.toasts, before)
}

func TestFormEscCancels(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "i", "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, domain.LoggedOut, m.controller.State().Session)
}

func TestShowMoreRevealsNextBatch(t *testing.T) {
	countries := make([]domain.Country, 30)
	for i := range countries {
		countries[i] = domain.Country{Name: fmt.Sprintf("Country %02d", i), Region: "Europe"}
	}
	m := newTestModel(t, countries)

	assert.Len(t, visibleNames(m), app.DefaultInitialVisible)
	assert.Contains(t, m.View(), "press m for more")

	press(m, "m")
	assert.Len(t, visibleNames(m), app.DefaultInitialVisible+app.DefaultShowMoreStep)

	press(m, "m")
	assert.Len(t, visibleNames(m), 30)
	assert.False(t, m.controller.HasMore())
	assert.NotContains(t, m.View(), "press m for more")
}

func TestGridNavigation(t *testing.T) {
	countries := make([]domain.Country, 10)
	for i := range countries {
		countries[i] = domain.Country{Name: fmt.Sprintf("Country %02d", i)}
	}
	m := newTestModel(t, countries)
	require.Equal(t, 4, m.navigator.Columns())

	press(m, "l")
	assert.Equal(t, 1, m.navigator.GetSelectedIndex())
	press(m, "j")
	assert.Equal(t, 5, m.navigator.GetSelectedIndex())
	press(m, "G")
	assert.Equal(t, 9, m.navigator.GetSelectedIndex())

	// Enter opens the card under the cursor
	press(m, "enter")
	assert.Equal(t, "Country 09", m.controller.State().Selected)
}

func TestFilterResetsCursor(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "l", "l")
	require.Equal(t, 2, m.navigator.GetSelectedIndex())

	press(m, "/")
	typeText(m, "e")
	assert.Equal(t, 0, m.navigator.GetSelectedIndex())
}

func TestLoadFailureShowsToast(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Contains(t, m.View(), "Loading countries")

	m.Update(EventMsg{Event: eventbus.CatalogLoadFailedEvent{Err: errors.New("boom")}})

	assert.Equal(t, []string{app.FetchFailedMessage}, toastTexts(m))
	assert.Contains(t, m.View(), "No country data available.")

	m.Update(clearToastMsg{id: m.toasts[0].id})
	assert.Empty(t, m.toasts)
}

func TestViewShowsCardsAndCounts(t *testing.T) {
	m := newTestModel(t, testCatalog())

	view := m.View()
	assert.Contains(t, view, "France")
	assert.Contains(t, view, "Paris")
	assert.Contains(t, view, "Showing 3 of 3")
	assert.Contains(t, view, "guest")

	press(m, "/")
	typeText(m, "r")
	view = m.View()
	assert.Contains(t, view, "Showing 2 of 2 (filtered from 3)")
	assert.Contains(t, view, `search "r"`)
}

func TestHelpToggleWithoutProgram(t *testing.T) {
	m := newTestModel(t, testCatalog())

	press(m, "?")
	assert.True(t, m.help.ShowAll)
	press(m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testCatalog())

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.True(t, containsQuit(cmd()))
}

func containsQuit(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil && containsQuit(c()) {
				return true
			}
		}
	}
	return false
}

func TestHelpContentListsKeys(t *testing.T) {
	content := NewHelpRenderer(DefaultKeyMap()).RenderHelpContent()
	for _, want := range []string{"Navigation", "Search & Filter", "show more", "log in", "favorites"} {
		assert.Contains(t, content, want)
	}
}
