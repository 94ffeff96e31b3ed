package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countrydex/internal/ui/input/modes"
	"countrydex/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeLanguage] = modes.NewLanguagePickerMode()
	h.modes[types.ModeRegion] = modes.NewRegionPickerMode()
	h.modes[types.ModeLogin] = modes.NewLoginMode()
	h.modes[types.ModeSignup] = modes.NewSignupMode()
	h.modes[types.ModeDetail] = modes.NewDetailMode()
	h.modes[types.ModeFavorites] = modes.NewFavoritesMode()
	h.modes[types.ModePrompt] = modes.NewPromptMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're not in text mode, nothing else handles it
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		// Always append an update action when in text mode to keep view in sync
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// ChangeMode switches modes from outside a key press, running the exit and enter hooks
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	return h.switchMode(mode, data, ctx)
}

func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	var actions []types.Action

	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	// Handle text input focus
	if h.isTextMode(h.currentMode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
		h.textInput.CursorEnd()
		h.textInput.Focus()
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Picker returns the active picker, or nil outside the picker modes
func (h *Handler) Picker() *modes.PickerMode {
	if p, ok := h.modes[h.currentMode].(*modes.PickerMode); ok {
		return p
	}
	return nil
}

// Form returns the active login or signup form, or nil
func (h *Handler) Form() *modes.FormMode {
	if f, ok := h.modes[h.currentMode].(*modes.FormMode); ok {
		return f
	}
	return nil
}

// FavoritesIndex returns the favorites page cursor
func (h *Handler) FavoritesIndex() int {
	if f, ok := h.modes[types.ModeFavorites].(*modes.FavoritesMode); ok {
		return f.GetCurrentIndex()
	}
	return 0
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
