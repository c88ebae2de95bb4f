package scheduling

import (
	"context"
	"time"

	"fletero/services/calendar"
)

// fakeDirectory is an in-memory calendar service for unit tests.
type fakeDirectory struct {
	resources []calendar.Resource
	events    map[string][]calendar.Interval

	listResourcesErr error
	listEventsErr    error
	insertErr        error

	listEventsCalls int
	inserted        []fakeInsert
}

type fakeInsert struct {
	calendarID string
	event      calendar.Event
}

func (f *fakeDirectory) ListResources(ctx context.Context) ([]calendar.Resource, error) {
	if f.listResourcesErr != nil {
		return nil, f.listResourcesErr
	}
	return f.resources, nil
}

func (f *fakeDirectory) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]calendar.Interval, error) {
	f.listEventsCalls++
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	var out []calendar.Interval
	for _, iv := range f.events[calendarID] {
		if iv.Start.Before(to) && iv.End.After(from) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeDirectory) InsertEvent(ctx context.Context, calendarID string, event calendar.Event) (*calendar.InsertedEvent, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, fakeInsert{calendarID: calendarID, event: event})
	return &calendar.InsertedEvent{ID: "evt-123", Link: "https://calendar.example/evt-123"}, nil
}
