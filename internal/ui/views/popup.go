package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws the popup centered over a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 || height <= 0 {
		return styledPopup
	}

	popupLines := strings.Split(styledPopup, "\n")
	popupW := lipgloss.Width(styledPopup)
	popupH := len(popupLines)

	x := (width - popupW) / 2
	y := (height - popupH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	// Replace whole lines under the popup; lipgloss v1 has no layer compositing
	for i, line := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = strings.Repeat(" ", x) + line
	}
	if len(base) > height {
		base = base[:height]
	}
	return strings.Join(base, "\n")
}

// RenderCentered places content in the middle of an otherwise empty screen
func (pr *PopupRenderer) RenderCentered(content string, height, width int, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return style.Render(content)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(content))
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(ansiRE.ReplaceAllString(line, ""))
	}
	return strings.Join(lines, "\n")
}
