package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"countrydex/internal/domain"
)

// DefaultURL is the public dataset endpoint, limited to the fields the catalog uses
const DefaultURL = "https://restcountries.com/v3.1/all?fields=name,capital,region,languages,population,area,flags,tld"

// Source provides the full country list
type Source interface {
	Fetch(ctx context.Context) ([]domain.Country, error)
}

// FetchError reports a network or decoding failure while loading the catalog
type FetchError struct {
	URL    string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch countries from %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch countries from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// HTTPSource fetches the dataset with a single GET request
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a source for url using http.DefaultClient
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: http.DefaultClient,
	}
}

var _ Source = (*HTTPSource)(nil)

// Fetch performs the request and decodes the response body
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Country, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: s.URL, Status: resp.StatusCode, Err: fmt.Errorf("unexpected response %s", resp.Status)}
	}

	var records []wireCountry
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{URL: s.URL, Status: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}

	countries := make([]domain.Country, 0, len(records))
	for _, r := range records {
		countries = append(countries, r.toDomain())
	}
	return countries, nil
}

// wireCountry mirrors the dataset's JSON shape. Missing fields decode to zero values.
type wireCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string          `json:"capital"`
	Region     string            `json:"region"`
	Languages  map[string]string `json:"languages"`
	Population int64             `json:"population"`
	Area       float64           `json:"area"`
	Flags      struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
	TLD []string `json:"tld"`
}

func (w wireCountry) toDomain() domain.Country {
	c := domain.Country{
		Name:            w.Name.Common,
		Region:          w.Region,
		Languages:       w.Languages,
		Population:      w.Population,
		Area:            w.Area,
		FlagImageURL:    w.Flags.SVG,
		TopLevelDomains: w.TLD,
	}
	if len(w.Capital) > 0 {
		c.Capital = w.Capital[0]
	}
	if c.FlagImageURL == "" {
		c.FlagImageURL = w.Flags.PNG
	}
	return c
}
