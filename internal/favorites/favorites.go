// Package favorites keeps the bounded list of favorite country names.
package favorites

import (
	"errors"

	"countrydex/internal/domain"
)

// MaxFavorites is the most names the set will hold at once
const MaxFavorites = 5

var (
	// ErrNotAuthenticated is returned when toggling while logged out
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrCapacityExceeded is returned when adding to a full set
	ErrCapacityExceeded = errors.New("favorites limit reached")
)

// Change is what a successful toggle did
type Change int

const (
	Added Change = iota + 1
	Removed
)

func (c Change) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "none"
	}
}

// Set is an insertion-ordered set of country names. The zero value is not usable; use New.
type Set struct {
	names    []string
	capacity int
}

// New creates an empty set holding at most MaxFavorites names
func New() *Set {
	return &Set{capacity: MaxFavorites}
}

// Toggle removes name if present, otherwise adds it. A failed toggle leaves the set untouched.
func (s *Set) Toggle(name string, state domain.SessionState) (Change, error) {
	if state != domain.LoggedIn {
		return 0, ErrNotAuthenticated
	}
	if i := s.index(name); i >= 0 {
		s.names = append(s.names[:i:i], s.names[i+1:]...)
		return Removed, nil
	}
	if len(s.names) >= s.capacity {
		return 0, ErrCapacityExceeded
	}
	s.names = append(s.names, name)
	return Added, nil
}

// Contains reports whether name is a favorite
func (s *Set) Contains(name string) bool {
	return s.index(name) >= 0
}

// Names returns the favorites in the order they were added
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Set) Len() int { return len(s.names) }

func (s *Set) Cap() int { return s.capacity }

func (s *Set) index(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}
