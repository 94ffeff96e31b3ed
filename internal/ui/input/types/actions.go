package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional seed text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Catalog actions
type ShowMoreAction struct{}

func (a ShowMoreAction) Type() string { return "show_more" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type SetLanguageAction struct {
	Value string // "" for all languages
}

func (a SetLanguageAction) Type() string { return "set_language" }

type SetRegionAction struct {
	Value string // "" for all regions
}

func (a SetRegionAction) Type() string { return "set_region" }

type UpdatePickerIndexAction struct {
	Index int
}

func (a UpdatePickerIndexAction) Type() string { return "update_picker_index" }

// Detail and favorites actions
type OpenDetailAction struct {
	Name string // "" for the country under the cursor
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type ToggleFavoriteAction struct {
	Name string // "" for the country in the detail view
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type UpdateFavoritesIndexAction struct {
	Index int
}

func (a UpdateFavoritesIndexAction) Type() string { return "update_favorites_index" }

// Session actions
type SubmitFormAction struct {
	Mode     Mode // ModeLogin or ModeSignup
	Username string
}

func (a SubmitFormAction) Type() string { return "submit_form" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

// Other actions
type DismissPromptAction struct{}

func (a DismissPromptAction) Type() string { return "dismiss_prompt" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
