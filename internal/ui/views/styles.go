package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	Badge         lipgloss.Style
	BadgeLoggedIn lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardName     lipgloss.Style
	CardCapital  lipgloss.Style
	Favorite     lipgloss.Style

	InfoBox   lipgloss.Style
	PromptBox lipgloss.Style
	FormBox   lipgloss.Style
	Label     lipgloss.Style

	Toast         lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// Card dimensions shared by the grid layout
const (
	CardWidth  = 25 // including border and gap
	CardHeight = 4  // including border
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Width(CardWidth - 3).
		Padding(0, 1).
		MarginRight(1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		BadgeLoggedIn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color("99")),
		CardName:     lipgloss.NewStyle().Bold(true),
		CardCapital:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Favorite:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(60).
			BorderForeground(lipgloss.Color("99")),
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			BorderForeground(lipgloss.Color("214")),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(44).
			BorderForeground(lipgloss.Color("39")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(12),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
