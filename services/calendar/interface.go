package calendar

import (
	"context"
	"time"
)

// Resource is one calendar from the account's calendar list. Label is the
// free-text summary carrying the fleet schema.
type Resource struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Interval is an existing event's occupied window on a calendar.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Event is the payload for a new calendar event.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// InsertedEvent is what the calendar service reports back after an insert.
type InsertedEvent struct {
	ID   string
	Link string
}

// Directory is the calendar-service capability the scheduling engine depends
// on. The production implementation talks to Google Calendar; tests supply an
// in-memory fake.
type Directory interface {
	// ListResources returns the account's calendars in list order. Order is
	// significant: the availability scan is first-fit over it.
	ListResources(ctx context.Context) ([]Resource, error)
	// ListEvents returns occupied intervals on a calendar within [from, to].
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Interval, error)
	// InsertEvent writes a new event and returns its id and shareable link.
	InsertEvent(ctx context.Context, calendarID string, event Event) (*InsertedEvent, error)
}
