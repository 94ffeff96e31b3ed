package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/types"
)

// AllOption is the first picker entry and clears the filter
const AllOption = "All"

// PickerMode cycles through the language or region values, applying each immediately
type PickerMode struct {
	mode          types.Mode
	options       []string // AllOption followed by the values
	index         int
	originalIndex int // Remember the selection when entering
}

func NewLanguagePickerMode() *PickerMode {
	return &PickerMode{mode: types.ModeLanguage}
}

func NewRegionPickerMode() *PickerMode {
	return &PickerMode{mode: types.ModeRegion}
}

func (m *PickerMode) Name() string {
	return m.mode.String()
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	var values []string
	var current string
	if m.mode == types.ModeLanguage {
		values, current = ctx.LanguageOptions(), ctx.CurrentLanguage()
	} else {
		values, current = ctx.RegionOptions(), ctx.CurrentRegion()
	}

	m.options = append([]string{AllOption}, values...)
	m.index = 0
	for i, v := range values {
		if v == current {
			m.index = i + 1
			break
		}
	}
	m.originalIndex = m.index

	return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for picker selection
func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore the original selection
		return []types.Action{
			m.apply(m.originalIndex),
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k", "left", "h":
		m.index--
		if m.index < 0 {
			m.index = len(m.options) - 1
		}
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}, m.apply(m.index)}, true

	case "down", "j", "right", "l", "tab":
		m.index++
		if m.index >= len(m.options) {
			m.index = 0
		}
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}, m.apply(m.index)}, true
	}

	return nil, true
}

func (m *PickerMode) apply(index int) types.Action {
	value := ""
	if index > 0 && index < len(m.options) {
		value = m.options[index]
	}
	if m.mode == types.ModeLanguage {
		return types.SetLanguageAction{Value: value}
	}
	return types.SetRegionAction{Value: value}
}

// Options returns the entries being cycled, starting with AllOption
func (m *PickerMode) Options() []string {
	return m.options
}

// GetCurrentIndex returns the highlighted option index
func (m *PickerMode) GetCurrentIndex() int {
	return m.index
}
