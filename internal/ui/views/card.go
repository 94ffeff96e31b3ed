package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"countrydex/internal/domain"
)

// NoCapital is shown on cards for countries without a capital
const NoCapital = "No Capital"

// CardRenderer handles rendering of country cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one card: name on the first line, capital on the second
func (r *CardRenderer) RenderCard(country domain.Country, isSelected, isFavorite bool, searchQuery string) string {
	inner := CardWidth - 5 // border, padding and margin

	name := country.Name
	marker := ""
	if isFavorite {
		marker = " ♥"
	}
	name = ansi.Truncate(name, inner-lipgloss.Width(marker), "…")
	nameLine := r.highlight(name, searchQuery) + r.styles.Favorite.Render(marker)

	capital := ansi.Truncate(country.CapitalOr(NoCapital), inner, "…")
	body := nameLine + "\n" + r.styles.CardCapital.Render(capital)

	if isSelected {
		return r.styles.CardSelected.Render(body)
	}
	return r.styles.Card.Render(body)
}

// RenderGrid lays out cards in rows of columns, showing rows [rowOffset, rowOffset+rows)
func (r *CardRenderer) RenderGrid(countries []domain.Country, selected, columns, rowOffset, rows int,
	isFavorite func(string) bool, searchQuery string) string {
	if columns < 1 {
		columns = 1
	}
	var lines []string
	start := rowOffset * columns
	end := start + rows*columns
	if end > len(countries) {
		end = len(countries)
	}
	for rowStart := start; rowStart < end; rowStart += columns {
		rowEnd := rowStart + columns
		if rowEnd > end {
			rowEnd = end
		}
		cards := make([]string, 0, columns)
		for i := rowStart; i < rowEnd; i++ {
			c := countries[i]
			cards = append(cards, r.RenderCard(c, i == selected, isFavorite(c.Name), searchQuery))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}

// highlight marks the first case-insensitive match of query in name
func (r *CardRenderer) highlight(name, query string) string {
	if query == "" {
		return r.styles.CardName.Render(name)
	}
	lower, lowerQuery := strings.ToLower(name), strings.ToLower(query)
	idx := strings.Index(lower, lowerQuery)
	// Byte offsets only line up when lowering kept the length
	if idx < 0 || len(lower) != len(name) || len(lowerQuery) != len(query) {
		return r.styles.CardName.Render(name)
	}
	return r.styles.CardName.Render(name[:idx]) +
		r.styles.Highlight.Render(name[idx:idx+len(query)]) +
		r.styles.CardName.Render(name[idx+len(query):])
}
