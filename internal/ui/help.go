package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the full key reference with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("countrydex Help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	// Mode specific keys that are not part of the normal mode map
	help.WriteString(sectionStyle.Render("Pickers & Forms"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Cycle language or region, applied immediately")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("tab"), descStyle.Render("Next form field")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("enter"), descStyle.Render("Accept")))
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("esc"), descStyle.Render("Cancel (clears the search)")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the document on exit, it would land on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k/g/G navigation on top of ov's defaults.
// Keys ov already binds are left alone.
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	used := make(map[string]bool)
	for _, keys := range config.Keybind {
		for _, k := range keys {
			used[k] = true
		}
	}
	for action, k := range map[string]string{"down": "j", "up": "k", "top": "g", "bottom": "G"} {
		if !used[k] {
			config.Keybind[action] = append(config.Keybind[action], k)
		}
	}
}
