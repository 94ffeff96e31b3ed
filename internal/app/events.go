package app

import "countrydex/internal/domain"

// Event is a user input or load completion consumed by Controller.Dispatch
type Event interface {
	Type() string
}

// SearchInput carries the full search box text after each keystroke
type SearchInput struct {
	Text string
}

func (e SearchInput) Type() string { return "search_input" }

// LanguageFilterChanged selects a language; "" means all languages
type LanguageFilterChanged struct {
	Value string
}

func (e LanguageFilterChanged) Type() string { return "language_filter_changed" }

// RegionFilterChanged selects a region; "" means all regions
type RegionFilterChanged struct {
	Value string
}

func (e RegionFilterChanged) Type() string { return "region_filter_changed" }

// FiltersCleared resets the search text and both pickers
type FiltersCleared struct{}

func (e FiltersCleared) Type() string { return "filters_cleared" }

type ShowMoreClicked struct{}

func (e ShowMoreClicked) Type() string { return "show_more_clicked" }

// CountrySelected opens the detail view for the first country with Name
type CountrySelected struct {
	Name string
}

func (e CountrySelected) Type() string { return "country_selected" }

type DetailClosed struct{}

func (e DetailClosed) Type() string { return "detail_closed" }

// FavoriteToggleClicked toggles Name, or the selected country when Name is empty
type FavoriteToggleClicked struct {
	Name string
}

func (e FavoriteToggleClicked) Type() string { return "favorite_toggle_clicked" }

type LoginSubmitted struct{}

func (e LoginSubmitted) Type() string { return "login_submitted" }

type SignupSubmitted struct{}

func (e SignupSubmitted) Type() string { return "signup_submitted" }

type LogoutClicked struct{}

func (e LogoutClicked) Type() string { return "logout_clicked" }

// CatalogLoaded delivers a successful load
type CatalogLoaded struct {
	Countries []domain.Country
}

func (e CatalogLoaded) Type() string { return "catalog_loaded" }

// CatalogLoadFailed delivers a failed load
type CatalogLoadFailed struct {
	Err error
}

func (e CatalogLoadFailed) Type() string { return "catalog_load_failed" }
