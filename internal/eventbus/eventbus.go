package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"countrydex/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoadStarted = domain.EventCatalogLoadStarted
	EventCatalogLoaded      = domain.EventCatalogLoaded
	EventCatalogLoadFailed  = domain.EventCatalogLoadFailed
	EventFavoriteChanged    = domain.EventFavoriteChanged
	EventSessionChanged     = domain.EventSessionChanged
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type CatalogLoadStartedEvent = domain.CatalogLoadStartedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type CatalogLoadFailedEvent = domain.CatalogLoadFailedEvent
type FavoriteChangedEvent = domain.FavoriteChangedEvent
type SessionChangedEvent = domain.SessionChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		b.logger.Warn("bus closed, dropping event", zap.String("type", string(event.Type())))
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.logger.Warn("event channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for queued events and running handlers to finish.
// Events published after Close are dropped.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Deliver what was queued before Close
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so the lock is not held while handlers run
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, s := range subsCopy {
		b.wg.Add(1)
		go func(h EventHandler, eventType EventType) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panic",
						zap.String("type", string(eventType)),
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()))
				}
			}()
			h(event)
		}(s.handler, event.Type())
	}
}
