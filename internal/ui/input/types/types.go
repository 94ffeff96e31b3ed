package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeLanguage
	ModeRegion
	ModeLogin
	ModeSignup
	ModeDetail
	ModeFavorites
	ModePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeLanguage:
		return "language"
	case ModeRegion:
		return "region"
	case ModeLogin:
		return "login"
	case ModeSignup:
		return "signup"
	case ModeDetail:
		return "detail"
	case ModeFavorites:
		return "favorites"
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentCountryName() string
	SearchQuery() string
	LoggedIn() bool

	// Picker support
	LanguageOptions() []string
	RegionOptions() []string
	CurrentLanguage() string
	CurrentRegion() string

	// Favorites page support
	FavoriteNames() []string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
