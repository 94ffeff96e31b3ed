package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"countrydex/internal/catalog"
	"countrydex/internal/domain"
	"countrydex/internal/eventbus"
	"countrydex/internal/favorites"
	"countrydex/internal/filter"
)

const (
	DefaultInitialVisible = 16
	DefaultShowMoreStep   = 10

	FetchFailedMessage    = "Unable to fetch country data. Please try again later."
	LoginRequiredMessage  = "Please log in to add favorites."
	favoriteAddedFormat   = "%s has been added to favorites."
	favoriteRemovedFormat = "%s has been removed from favorites."
	capacityFormat        = "You can only have %d favorites."
)

// NotificationKind tells the view how to surface a notification
type NotificationKind int

const (
	// Toast disappears on its own after a few seconds
	Toast NotificationKind = iota
	// Prompt blocks input until dismissed
	Prompt
)

// Notification is a message for the user produced by Dispatch
type Notification struct {
	Kind NotificationKind
	Text string
}

// Settings tunes the visible window
type Settings struct {
	InitialVisible int
	ShowMoreStep   int
}

// Controller owns the State and is the only thing that mutates it.
// It is not safe for concurrent use; the UI goroutine owns it.
type Controller struct {
	state  *State
	store  *catalog.Store
	step   int
	bus    eventbus.EventBus
	logger *zap.Logger
}

// NewController creates a controller reading the catalog from store.
// A nil store starts empty; bus may be nil.
func NewController(settings Settings, store *catalog.Store, bus eventbus.EventBus, logger *zap.Logger) *Controller {
	if settings.InitialVisible <= 0 {
		settings.InitialVisible = DefaultInitialVisible
	}
	if settings.ShowMoreStep <= 0 {
		settings.ShowMoreStep = DefaultShowMoreStep
	}
	if store == nil {
		store = catalog.NewStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		state:  NewState(settings.InitialVisible),
		store:  store,
		step:   settings.ShowMoreStep,
		bus:    bus,
		logger: logger.Named("app"),
	}
	if store.Loaded() {
		c.catalogChanged(LoadSucceeded, nil)
	}
	return c
}

// Dispatch applies one event and returns the notifications it produced
func (c *Controller) Dispatch(ev Event) []Notification {
	c.logger.Debug("dispatch", zap.String("event", ev.Type()))

	s := c.state
	switch e := ev.(type) {
	case SearchInput:
		s.Criteria.Query = e.Text
		c.refilter()

	case LanguageFilterChanged:
		s.Criteria.Language = e.Value
		c.refilter()

	case RegionFilterChanged:
		s.Criteria.Region = e.Value
		c.refilter()

	case FiltersCleared:
		s.Criteria = filter.Criteria{}
		c.refilter()

	case ShowMoreClicked:
		s.VisibleCount += c.step

	case CountrySelected:
		if _, ok := c.store.Find(e.Name); ok {
			s.Selected = e.Name
		} else {
			c.logger.Debug("selected country not in catalog", zap.String("name", e.Name))
		}

	case DetailClosed:
		s.Selected = ""

	case FavoriteToggleClicked:
		return c.toggleFavorite(e.Name)

	case LoginSubmitted:
		return c.sessionChange(s.Session.LogIn, "login")

	case SignupSubmitted:
		return c.sessionChange(s.Session.SignUp, "signup")

	case LogoutClicked:
		return c.sessionChange(s.Session.LogOut, "logout")

	case CatalogLoaded:
		// The loader has usually filled the store already; replacing it again keeps
		// the store and the event in agreement when the event comes from elsewhere.
		c.store.Replace(e.Countries)
		c.catalogChanged(LoadSucceeded, nil)

	case CatalogLoadFailed:
		c.store.Clear()
		c.catalogChanged(LoadFailed, e.Err)
		c.logger.Warn("catalog unavailable", zap.Error(e.Err))
		return []Notification{{Kind: Toast, Text: FetchFailedMessage}}

	default:
		c.logger.Warn("unhandled event", zap.String("event", ev.Type()))
	}
	return nil
}

func (c *Controller) refilter() {
	c.state.Filtered = filter.Apply(c.store.All(), c.state.Criteria)
}

func (c *Controller) catalogChanged(status LoadStatus, err error) {
	c.state.Options = filter.BuildOptions(c.store.All())
	c.state.Load = status
	c.state.LoadErr = err
	c.refilter()
}

func (c *Controller) toggleFavorite(name string) []Notification {
	s := c.state
	if name == "" {
		name = s.Selected
	}
	if name == "" {
		return nil
	}

	change, err := s.Favorites.Toggle(name, s.Session.State())
	switch {
	case errors.Is(err, favorites.ErrNotAuthenticated):
		return []Notification{{Kind: Prompt, Text: LoginRequiredMessage}}
	case errors.Is(err, favorites.ErrCapacityExceeded):
		return []Notification{{Kind: Prompt, Text: fmt.Sprintf(capacityFormat, s.Favorites.Cap())}}
	case err != nil:
		c.logger.Error("toggle favorite", zap.String("name", name), zap.Error(err))
		return nil
	}

	c.publish(eventbus.FavoriteChangedEvent{Name: name, Added: change == favorites.Added, Count: s.Favorites.Len()})
	if change == favorites.Added {
		return []Notification{{Kind: Toast, Text: fmt.Sprintf(favoriteAddedFormat, name)}}
	}
	return []Notification{{Kind: Toast, Text: fmt.Sprintf(favoriteRemovedFormat, name)}}
}

func (c *Controller) sessionChange(transition func() string, via string) []Notification {
	from := c.state.Session.State()
	notice := transition()
	if notice == "" {
		return nil
	}
	c.publish(eventbus.SessionChangedEvent{From: from, To: c.state.Session.State(), Via: via})
	return []Notification{{Kind: Toast, Text: notice}}
}

func (c *Controller) publish(ev eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(ev)
	}
}

// State returns a snapshot of the current state
func (c *Controller) State() Snapshot {
	s := c.state
	return Snapshot{
		Load:          s.Load,
		CatalogSize:   c.store.Len(),
		FilteredSize:  len(s.Filtered),
		Criteria:      s.Criteria,
		VisibleCount:  s.VisibleCount,
		Selected:      s.Selected,
		Session:       s.Session.State(),
		FavoriteNames: s.Favorites.Names(),
	}
}

// Filtered returns every country matching the current criteria
func (c *Controller) Filtered() []domain.Country {
	return append([]domain.Country(nil), c.state.Filtered...)
}

// Visible returns the prefix of Filtered currently shown
func (c *Controller) Visible() []domain.Country {
	return catalog.VisibleSlice(c.state.Filtered, c.state.VisibleCount)
}

// HasMore reports whether show more would reveal more countries
func (c *Controller) HasMore() bool {
	return c.state.VisibleCount < len(c.state.Filtered)
}

// Selected returns the country open in the detail view
func (c *Controller) Selected() (domain.Country, bool) {
	if c.state.Selected == "" {
		return domain.Country{}, false
	}
	return c.store.Find(c.state.Selected)
}

// IsFavorite reports whether name is a favorite
func (c *Controller) IsFavorite(name string) bool {
	return c.state.Favorites.Contains(name)
}

// Favorites resolves the favorite names against the catalog in the order they were added.
// Names missing from the catalog are skipped.
func (c *Controller) Favorites() []domain.Country {
	names := c.state.Favorites.Names()
	out := make([]domain.Country, 0, len(names))
	for _, name := range names {
		if country, ok := c.store.Find(name); ok {
			out = append(out, country)
		}
	}
	return out
}

// Options returns the language and region picker values
func (c *Controller) Options() filter.Options {
	return c.state.Options
}

// LoadErr returns the error of a failed load
func (c *Controller) LoadErr() error {
	return c.state.LoadErr
}
