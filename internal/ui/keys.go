package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal mode bindings for the help views.
// Dispatch itself lives in the input modes.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Search    key.Binding
	Language  key.Binding
	Region    key.Binding
	Clear     key.Binding
	More      key.Binding
	Favorites key.Binding
	Favorite  key.Binding
	Login     key.Binding
	Signup    key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings handled by the normal, detail and favorites modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("gg", "first")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Language:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Region:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "region")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		More:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "show more")),
		Favorites: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle favorite (details)")),
		Login:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "log in")),
		Signup:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "sign up")),
		Logout:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Language, k.Region, k.Open, k.More, k.Favorites, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.Search, k.Language, k.Region, k.Clear, k.More},
		{k.Open, k.Favorite, k.Favorites},
		{k.Login, k.Signup, k.Logout, k.Help, k.Quit},
	}
}

// helpSections names the FullHelp columns, in order
var helpSections = []string{"Navigation", "Search & Filter", "Countries", "Account"}
