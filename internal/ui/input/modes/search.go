package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"countrydex/internal/ui/input/types"
)

// SearchMode filters the grid as the user types. Esc clears the search.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
