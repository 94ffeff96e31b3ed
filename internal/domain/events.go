package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadStarted EventType = "CatalogLoadStarted"
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventCatalogLoadFailed  EventType = "CatalogLoadFailed"
	EventFavoriteChanged    EventType = "FavoriteChanged"
	EventSessionChanged     EventType = "SessionChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadStartedEvent is emitted when the dataset request goes out
type CatalogLoadStartedEvent struct {
	URL string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadedEvent is emitted once the dataset has been fetched and decoded
type CatalogLoadedEvent struct {
	Countries []Country
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when fetching or decoding the dataset failed
type CatalogLoadFailedEvent struct {
	Err error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// FavoriteChangedEvent is emitted after a successful favorites toggle
type FavoriteChangedEvent struct {
	Name  string
	Added bool
	Count int
}

func (e FavoriteChangedEvent) Type() EventType { return EventFavoriteChanged }

// SessionChangedEvent is emitted on every login, signup or logout transition
type SessionChangedEvent struct {
	From SessionState
	To   SessionState
	Via  string // "login", "signup" or "logout"
}

func (e SessionChangedEvent) Type() EventType { return EventSessionChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	SourceURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
