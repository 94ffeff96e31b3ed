package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"countrydex/internal/domain"
	"countrydex/internal/eventbus"
)

// DefaultTimeout bounds a single load when none is configured
const DefaultTimeout = 15 * time.Second

// Loader performs catalog loads against a Source and keeps the result in a Store
type Loader struct {
	source  Source
	store   *Store
	timeout time.Duration
	group   singleflight.Group
	logger  *zap.Logger
}

// NewLoader creates a loader. A zero timeout means DefaultTimeout.
func NewLoader(source Source, store *Store, timeout time.Duration, logger *zap.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:  source,
		store:   store,
		timeout: timeout,
		logger:  logger.Named("catalog"),
	}
}

// Load fetches the full list once. On success the store is replaced; on failure it is left empty
// and a *FetchError is returned. There is no retry. Concurrent calls share the in-flight fetch.
// The shared fetch is bounded by the loader timeout only, so a caller whose ctx ends gets its
// own error while the others keep waiting.
func (l *Loader) Load(ctx context.Context) ([]domain.Country, error) {
	ch := l.group.DoChan("load", func() (interface{}, error) {
		return l.load(context.WithoutCancel(ctx))
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, &FetchError{Err: ctx.Err()}
	case res = <-ch:
	}
	if res.Shared {
		l.logger.Debug("shared in-flight catalog load")
	}
	if res.Err != nil {
		return nil, res.Err
	}
	countries := res.Val.([]domain.Country)
	cp := make([]domain.Country, len(countries))
	copy(cp, countries)
	return cp, nil
}

func (l *Loader) load(ctx context.Context) ([]domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	countries, err := l.source.Fetch(ctx)
	if err != nil {
		l.store.Clear()
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{Err: err}
		}
		l.logger.Error("catalog load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	if dups := DuplicateNames(countries); len(dups) > 0 {
		// Name is the identity key; duplicates resolve to the first entry
		l.logger.Warn("duplicate country names in dataset", zap.Strings("names", dups))
	}

	l.store.Replace(countries)
	l.logger.Info("catalog loaded", zap.Int("count", len(countries)), zap.Duration("elapsed", time.Since(start)))
	return countries, nil
}

// Service runs loads and reports their outcome on the event bus
type Service struct {
	loader *Loader
	bus    eventbus.EventBus
	url    string
}

// NewService creates a catalog service. url is only used for the started event.
func NewService(loader *Loader, bus eventbus.EventBus, url string) *Service {
	return &Service{
		loader: loader,
		bus:    bus,
		url:    url,
	}
}

// Load runs one load and publishes the started event followed by a loaded or failed event
func (s *Service) Load(ctx context.Context) error {
	s.bus.Publish(eventbus.CatalogLoadStartedEvent{URL: s.url})

	countries, err := s.loader.Load(ctx)
	if err != nil {
		s.bus.Publish(eventbus.CatalogLoadFailedEvent{Err: err})
		return err
	}
	s.bus.Publish(eventbus.CatalogLoadedEvent{Countries: countries})
	return nil
}
