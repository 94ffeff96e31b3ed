package domain

import (
	"sort"
	"strings"
)

// Country represents one entry of the countries dataset.
// Name is the identity key; two entries sharing a name are not told apart.
type Country struct {
	Name            string
	Capital         string            // "" when the country has no capital
	Region          string
	Languages       map[string]string // language code -> language name
	Population      int64
	Area            float64
	FlagImageURL    string
	TopLevelDomains []string
}

// CapitalOr returns the capital or fallback when there is none
func (c Country) CapitalOr(fallback string) string {
	if c.Capital == "" {
		return fallback
	}
	return c.Capital
}

// LanguageNames returns the language names ordered by language code
func (c Country) LanguageNames() []string {
	if len(c.Languages) == 0 {
		return nil
	}
	codes := make([]string, 0, len(c.Languages))
	for code := range c.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, c.Languages[code])
	}
	return names
}

// HasLanguage reports whether name is one of the country's language names (exact match)
func (c Country) HasLanguage(name string) bool {
	for _, lang := range c.Languages {
		if lang == name {
			return true
		}
	}
	return false
}

// DomainsOr joins the top level domains or returns fallback when there are none
func (c Country) DomainsOr(fallback string) string {
	if len(c.TopLevelDomains) == 0 {
		return fallback
	}
	return strings.Join(c.TopLevelDomains, ", ")
}

// SessionState is the only authentication state there is
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	switch s {
	case LoggedIn:
		return "logged in"
	default:
		return "logged out"
	}
}
