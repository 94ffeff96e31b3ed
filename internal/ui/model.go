package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"countrydex/internal/app"
	"countrydex/internal/domain"
	"countrydex/internal/eventbus"
	"countrydex/internal/favorites"
	"countrydex/internal/ui/input"
	inputtypes "countrydex/internal/ui/input/types"
	"countrydex/internal/ui/logic"
	"countrydex/internal/ui/views"
)

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 3 * time.Second

// Options tunes the model
type Options struct {
	ToastDuration time.Duration
}

type toast struct {
	id   int
	text string
}

// Model is the Bubble Tea model. Every state change goes through the controller.
type Model struct {
	controller *app.Controller
	logger     *zap.Logger
	opts       Options

	// UI-specific state not owned by the controller
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	spinner     spinner.Model
	inPagerMode bool

	toasts      []toast
	nextToastID int
	prompt      string

	keyMode      inputtypes.Mode // mode when the current key arrived
	detailReturn inputtypes.Mode // where closing the detail view goes
	promptReturn inputtypes.Mode // where dismissing a prompt goes

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around controller
func NewModel(controller *app.Controller, logger *zap.Logger, opts Options) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	keys := DefaultKeyMap()
	m := &Model{
		controller:   controller,
		logger:       logger.Named("ui"),
		opts:         opts,
		help:         help.New(),
		keys:         keys,
		spinner:      sp,
		detailReturn: inputtypes.ModeNormal,
		promptReturn: inputtypes.ModeNormal,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(nil),
	}
	m.syncNavigatorState()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init starts the loading spinner
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Controller: m.controller,
		Navigator:  m.navigator,
	}
}

// syncNavigatorState updates the navigator with the current grid layout
func (m *Model) syncNavigatorState() {
	columns, rows := views.GridLayout(m.width, m.height)
	m.navigator.UpdateState(len(m.controller.Visible()), columns, rows)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncNavigatorState()
		return m, nil

	case tea.KeyMsg:
		m.keyMode = m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		// Stop ticking once the catalog has settled
		if m.controller.State().Load != app.LoadPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearToastMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: show the full key list in the footer instead
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and friends for the search input
	return m, m.inputHandler.Update(msg)
}

// handleEvent turns bus events into controller events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		m.logger.Info("catalog ready", zap.Int("countries", len(e.Countries)))
		return m.dispatch(app.CatalogLoaded{Countries: e.Countries})
	case eventbus.CatalogLoadFailedEvent:
		return m.dispatch(app.CatalogLoadFailed{Err: e.Err})
	}
	return nil
}

// dispatch hands ev to the controller and surfaces what it reports
func (m *Model) dispatch(ev app.Event) tea.Cmd {
	notes := m.controller.Dispatch(ev)
	m.syncNavigatorState()
	return m.notify(notes)
}

// dispatchFilter is dispatch for events that change the filtered list; the cursor goes back to the first card
func (m *Model) dispatchFilter(ev app.Event) tea.Cmd {
	cmd := m.dispatch(ev)
	m.navigator.SetSelectedIndex(0)
	return cmd
}

func (m *Model) notify(notes []app.Notification) tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range notes {
		switch n.Kind {
		case app.Prompt:
			m.prompt = n.Text
			if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModePrompt {
				m.promptReturn = mode
				m.inputHandler.ChangeMode(inputtypes.ModePrompt, "", m.context())
			}
		default:
			m.nextToastID++
			id := m.nextToastID
			m.toasts = append(m.toasts, toast{id: id, text: n.Text})
			cmds = append(cmds, tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
				return clearToastMsg{id: id}
			}))
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch && a.Text != m.controller.State().Criteria.Query {
			return m.dispatchFilter(app.SearchInput{Text: a.Text})
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch && a.Text != m.controller.State().Criteria.Query {
			return m.dispatchFilter(app.SearchInput{Text: a.Text})
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.dispatchFilter(app.SearchInput{Text: ""})
		}

	case inputtypes.SetLanguageAction:
		return m.dispatchFilter(app.LanguageFilterChanged{Value: a.Value})

	case inputtypes.SetRegionAction:
		return m.dispatchFilter(app.RegionFilterChanged{Value: a.Value})

	case inputtypes.ClearFiltersAction:
		return m.dispatchFilter(app.FiltersCleared{})

	case inputtypes.ShowMoreAction:
		return m.dispatch(app.ShowMoreClicked{})

	case inputtypes.OpenDetailAction:
		name := a.Name
		if name == "" {
			name = m.context().CurrentCountryName()
		}
		if m.keyMode == inputtypes.ModeFavorites {
			m.detailReturn = inputtypes.ModeFavorites
		} else {
			m.detailReturn = inputtypes.ModeNormal
		}
		return m.dispatch(app.CountrySelected{Name: name})

	case inputtypes.CloseDetailAction:
		cmd := m.dispatch(app.DetailClosed{})
		m.inputHandler.ChangeMode(m.detailReturn, "", m.context())
		return cmd

	case inputtypes.ToggleFavoriteAction:
		return m.dispatch(app.FavoriteToggleClicked{Name: a.Name})

	case inputtypes.SubmitFormAction:
		m.logger.Debug("form submitted", zap.String("mode", a.Mode.String()), zap.String("username", a.Username))
		if a.Mode == inputtypes.ModeSignup {
			return m.dispatch(app.SignupSubmitted{})
		}
		return m.dispatch(app.LoginSubmitted{})

	case inputtypes.LogoutAction:
		return m.dispatch(app.LogoutClicked{})

	case inputtypes.DismissPromptAction:
		m.prompt = ""
		m.inputHandler.ChangeMode(m.promptReturn, "", m.context())

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	snap := m.controller.State()
	visible := m.controller.Visible()

	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Loading:       snap.Load == app.LoadPending,
		LoadFailed:    snap.Load == app.LoadFailed,
		Spinner:       m.spinner.View(),
		Visible:       visible,
		FilteredSize:  snap.FilteredSize,
		CatalogSize:   snap.CatalogSize,
		HasMore:       m.controller.HasMore(),
		Criteria:      snap.Criteria,
		SelectedIndex: m.navigator.GetSelectedIndex(),
		Columns:       m.navigator.Columns(),
		RowOffset:     m.navigator.GetRowOffset(),
		ViewportRows:  m.navigator.ViewportRows(),
		LoggedIn:      snap.Session == domain.LoggedIn,
		FavoriteCount: len(snap.FavoriteNames),
		FavoriteCap:   favorites.MaxFavorites,
		IsFavorite:    m.controller.IsFavorite,
		HelpView:      m.help.View(m.keys),
	}
	for _, t := range m.toasts {
		vs.Toasts = append(vs.Toasts, t.text)
	}

	mode := m.inputHandler.CurrentMode()
	if mode == inputtypes.ModePrompt {
		vs.Prompt = m.prompt
		// Keep what the prompt was raised over visible underneath it
		mode = m.promptReturn
	}

	switch mode {
	case inputtypes.ModeSearch:
		vs.InputMode = mode.String()
		vs.InputPrompt = "Search: "
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case inputtypes.ModeLanguage, inputtypes.ModeRegion:
		vs.InputMode = mode.String()
		if p := m.inputHandler.Picker(); p != nil {
			vs.PickerOptions = p.Options()
			vs.PickerIndex = p.GetCurrentIndex()
		}
	case inputtypes.ModeLogin, inputtypes.ModeSignup:
		if f := m.inputHandler.Form(); f != nil {
			vs.FormTitle = f.Title()
			vs.FormView = f.View()
		}
	case inputtypes.ModeFavorites:
		vs.ShowFavorites = true
		vs.Favorites = m.controller.Favorites()
		vs.FavoritesIndex = min(m.inputHandler.FavoritesIndex(), len(vs.Favorites)-1)
	case inputtypes.ModeDetail:
		if c, ok := m.controller.Selected(); ok {
			vs.Detail = &c
		}
		if m.detailReturn == inputtypes.ModeFavorites {
			vs.ShowFavorites = true
			vs.Favorites = m.controller.Favorites()
			vs.FavoritesIndex = min(m.inputHandler.FavoritesIndex(), len(vs.Favorites)-1)
		}
	}
	return vs
}
