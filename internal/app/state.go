// Package app owns the application state and the single reducer that changes it.
package app

import (
	"countrydex/internal/domain"
	"countrydex/internal/favorites"
	"countrydex/internal/filter"
	"countrydex/internal/session"
)

// LoadStatus tracks the one catalog load of the session
type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadSucceeded
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadSucceeded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "loading"
	}
}

// State contains all the application state
type State struct {
	// Derived from the catalog store
	Options  filter.Options
	Load     LoadStatus
	LoadErr  error
	Filtered []domain.Country // cached filter.Apply(store, Criteria)

	// View state
	Criteria     filter.Criteria
	VisibleCount int
	Selected     string // name of the country shown in detail, "" when closed

	// User state
	Session   *session.Session
	Favorites *favorites.Set
}

// NewState creates the initial state
func NewState(initialVisible int) *State {
	return &State{
		Filtered:     make([]domain.Country, 0),
		VisibleCount: initialVisible,
		Session:      session.New(),
		Favorites:    favorites.New(),
	}
}

// Snapshot is a read-only copy of the state for rendering and tests
type Snapshot struct {
	Load          LoadStatus
	CatalogSize   int
	FilteredSize  int
	Criteria      filter.Criteria
	VisibleCount  int
	Selected      string
	Session       domain.SessionState
	FavoriteNames []string
}
