// Package filter derives the visible subset of the catalog from the active search and filters.
// Everything here is pure: no package state, no I/O.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"countrydex/internal/domain"
)

// Criteria holds the user's filter selection. Empty fields are inactive.
// Query is matched as typed; surrounding spaces are part of the substring.
type Criteria struct {
	Query    string // case-insensitive substring of the country name
	Language string // exact language name
	Region   string // exact region
}

// Active reports whether any predicate is set
func (c Criteria) Active() bool {
	return c.Query != "" || c.Language != "" || c.Region != ""
}

// String renders the active predicates for status display
func (c Criteria) String() string {
	var parts []string
	if c.Query != "" {
		parts = append(parts, fmt.Sprintf("search %q", c.Query))
	}
	if c.Language != "" {
		parts = append(parts, "language "+c.Language)
	}
	if c.Region != "" {
		parts = append(parts, "region "+c.Region)
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, ", ")
}

// Apply returns the countries matching every active predicate, in catalog order.
// The result is always a fresh slice.
func Apply(countries []domain.Country, criteria Criteria) []domain.Country {
	folder := cases.Fold()
	query := folder.String(criteria.Query)

	out := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if criteria.Region != "" && c.Region != criteria.Region {
			continue
		}
		if criteria.Language != "" && !c.HasLanguage(criteria.Language) {
			continue
		}
		if query != "" && !strings.Contains(folder.String(c.Name), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Options are the distinct values offered by the language and region pickers
type Options struct {
	Languages []string
	Regions   []string
}

// BuildOptions collects the distinct non-empty languages and regions of the catalog, sorted
func BuildOptions(countries []domain.Country) Options {
	langs := make(map[string]struct{})
	regions := make(map[string]struct{})
	for _, c := range countries {
		for _, l := range c.Languages {
			if l != "" {
				langs[l] = struct{}{}
			}
		}
		if c.Region != "" {
			regions[c.Region] = struct{}{}
		}
	}
	return Options{
		Languages: sortedKeys(langs),
		Regions:   sortedKeys(regions),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
