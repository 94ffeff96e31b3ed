package ui

import (
	"countrydex/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearToastMsg removes the toast with the given id once it has been shown long enough
type clearToastMsg struct {
	id int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
