package catalog

import (
	"sync"

	"countrydex/internal/domain"
)

// Store holds the catalog for the session. The list is replaced wholesale, never edited in place.
type Store struct {
	mu        sync.RWMutex
	countries []domain.Country
	loaded    bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded list
func (s *Store) Replace(countries []domain.Country) {
	cp := make([]domain.Country, len(countries))
	copy(cp, countries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = cp
	s.loaded = true
}

// Clear empties the store, used when a load fails
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = nil
	s.loaded = false
}

// All returns a copy of the catalog in dataset order
func (s *Store) All() []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]domain.Country, len(s.countries))
	copy(cp, s.countries)
	return cp
}

// Len returns the number of countries held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countries)
}

// Loaded reports whether a load has succeeded
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Find returns the first country with the given name
func (s *Store) Find(name string) (domain.Country, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindByName(s.countries, name)
}

// FindByName returns the first country in countries with the given name
func FindByName(countries []domain.Country, name string) (domain.Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Country{}, false
}

// DuplicateNames lists names that occur more than once, in first-seen order
func DuplicateNames(countries []domain.Country) []string {
	seen := make(map[string]int, len(countries))
	var dups []string
	for _, c := range countries {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}

// VisibleSlice returns the first count elements of filtered, or all of them when count exceeds its length
func VisibleSlice(filtered []domain.Country, count int) []domain.Country {
	if count <= 0 {
		return []domain.Country{}
	}
	if count > len(filtered) {
		count = len(filtered)
	}
	return filtered[:count:count]
}
