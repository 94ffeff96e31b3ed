package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countrydex/internal/domain"
	"countrydex/internal/filter"
)

// ChromeLines is the vertical space taken by everything but the card grid
const ChromeLines = 10

// GridLayout returns how many card columns and rows fit in a terminal of the given size
func GridLayout(width, height int) (columns, rows int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	columns = (width - 4) / CardWidth
	if columns < 1 {
		columns = 1
	}
	rows = (height - ChromeLines) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return columns, rows
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Catalog
	Loading      bool
	LoadFailed   bool
	Spinner      string
	Visible      []domain.Country
	FilteredSize int
	CatalogSize  int
	HasMore      bool
	Criteria     filter.Criteria

	// Grid cursor
	SelectedIndex int
	Columns       int
	RowOffset     int
	ViewportRows  int

	// User
	LoggedIn      bool
	FavoriteCount int
	FavoriteCap   int
	IsFavorite    func(name string) bool

	// Input
	InputMode     string // "" in normal mode
	InputPrompt   string
	TextInput     string
	PickerOptions []string
	PickerIndex   int
	FormTitle     string
	FormView      string

	// Overlays
	Detail         *domain.Country
	ShowFavorites  bool
	Favorites      []domain.Country
	FavoritesIndex int
	Toasts         []string
	Prompt         string

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	cardRender   *CardRenderer
	detailRender *DetailRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		cardRender:   NewCardRenderer(styles),
		detailRender: NewDetailRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.IsFavorite == nil {
		state.IsFavorite = func(string) bool { return false }
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	// Input line for search and pickers
	switch {
	case state.InputMode == "search":
		content.WriteString(state.InputPrompt + state.TextInput)
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("enter keep • esc clear"))
		content.WriteString("\n")
	case len(state.PickerOptions) > 0:
		content.WriteString(r.renderPicker(state))
		content.WriteString("\n")
	}

	if state.ShowFavorites {
		content.WriteString(r.renderFavoritesPage(state))
	} else {
		content.WriteString(r.renderMain(state))
	}
	content.WriteString("\n")

	// Footer: toasts, counts, key help
	var footer []string
	for _, t := range state.Toasts {
		footer = append(footer, r.styles.Toast.Render(t))
	}
	footer = append(footer, r.renderStatus(state))
	if state.HelpView != "" {
		footer = append(footer, state.HelpView)
	}

	// Push the footer to the bottom
	used := strings.Count(content.String(), "\n") + 1
	available := state.Height - 2 // container padding
	if pad := available - used - len(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(strings.Join(footer, "\n"))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlays, innermost last
	if state.FormTitle != "" {
		finalContent = r.popupRender.RenderPopupOverlay(finalContent,
			r.styles.Title.Render(state.FormTitle)+"\n\n"+state.FormView+"\n\n"+r.styles.Help.Render("tab switch field • enter submit • esc cancel"),
			state.Height, state.Width, r.styles.FormBox)
	}
	if state.Detail != nil {
		body := r.detailRender.RenderDetail(*state.Detail, state.IsFavorite(state.Detail.Name), state.LoggedIn)
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, body, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.Prompt != "" {
		body := state.Prompt + "\n\n" + r.styles.Help.Render("press enter to continue")
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, body, state.Height, state.Width, r.styles.PromptBox)
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("countrydex")

	var badges []string
	if state.Criteria.Active() {
		badges = append(badges, r.styles.Filter.Render("["+state.Criteria.String()+"]"))
	}
	badges = append(badges, r.styles.Favorite.Render(fmt.Sprintf("♥ %d/%d", state.FavoriteCount, state.FavoriteCap)))
	if state.LoggedIn {
		badges = append(badges, r.styles.BadgeLoggedIn.Render("logged in"))
	} else {
		badges = append(badges, r.styles.Badge.Render("guest"))
	}
	right := strings.Join(badges, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderPicker(state ViewState) string {
	label := "Language"
	if state.InputMode == "region" {
		label = "Region"
	}
	current := ""
	if state.PickerIndex >= 0 && state.PickerIndex < len(state.PickerOptions) {
		current = state.PickerOptions[state.PickerIndex]
	}
	line := fmt.Sprintf("%s: %s  %s", label, r.styles.Highlight.Render(current),
		r.styles.Dim.Render(fmt.Sprintf("(%d/%d)", state.PickerIndex+1, len(state.PickerOptions))))
	return line + "\n" + r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
}

func (r *Renderer) renderMain(state ViewState) string {
	switch {
	case state.Loading:
		return r.styles.StatusLoading.Render(state.Spinner + " Loading countries...")
	case state.LoadFailed:
		return r.styles.StatusError.Render("No country data available.")
	case state.CatalogSize == 0:
		return r.styles.Dim.Render("The dataset is empty.")
	case len(state.Visible) == 0:
		return r.styles.Dim.Render("No countries match the current filters. Press c to clear them.")
	}

	grid := r.cardRender.RenderGrid(state.Visible, state.SelectedIndex, state.Columns,
		state.RowOffset, state.ViewportRows, state.IsFavorite, state.Criteria.Query)

	totalRows := (len(state.Visible) + state.Columns - 1) / max(state.Columns, 1)
	var lines []string
	if state.RowOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d rows above ↑", state.RowOffset)))
	}
	lines = append(lines, grid)
	if below := totalRows - state.RowOffset - state.ViewportRows; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d rows below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFavoritesPage(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Favorite Countries"))
	b.WriteString("\n\n")
	if len(state.Favorites) == 0 {
		b.WriteString(r.styles.Dim.Render("No favorites yet. Open a country and press f to add it."))
		b.WriteString("\n")
	}
	for i, c := range state.Favorites {
		cursor := "  "
		name := c.Name
		if i == state.FavoritesIndex {
			cursor = r.styles.Highlight.Render("> ")
			name = r.styles.Highlight.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, r.styles.CardCapital.Render(c.CapitalOr(NoCapital))))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("enter details • f remove • esc back"))
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.Loading || state.LoadFailed {
		return r.styles.Dim.Render("Press ? for help")
	}
	status := fmt.Sprintf("Showing %d of %d", len(state.Visible), state.FilteredSize)
	if state.FilteredSize != state.CatalogSize {
		status += fmt.Sprintf(" (filtered from %d)", state.CatalogSize)
	}
	if state.HasMore {
		status += " • press m for more"
	}
	return r.styles.Dim.Render(status)
}
