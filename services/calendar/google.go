package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleDirectory implements Directory against the Google Calendar API.
type GoogleDirectory struct {
	svc      *gcal.Service
	pageSize int64
	timeZone string
	location *time.Location
}

// NewGoogleDirectory builds a directory from a service-account key file.
// timeZone is the IANA name written onto created events; location anchors
// all-day events.
func NewGoogleDirectory(ctx context.Context, credentialsFile, timeZone string, location *time.Location, pageSize int64) (*GoogleDirectory, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create service: %w", err)
	}
	if pageSize <= 0 {
		pageSize = 250
	}
	return &GoogleDirectory{
		svc:      svc,
		pageSize: pageSize,
		timeZone: timeZone,
		location: location,
	}, nil
}

func (d *GoogleDirectory) ListResources(ctx context.Context) ([]Resource, error) {
	resp, err := d.svc.CalendarList.List().MaxResults(d.pageSize).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	resources := make([]Resource, 0, len(resp.Items))
	for _, item := range resp.Items {
		resources = append(resources, Resource{ID: item.Id, Label: item.Summary})
	}
	return resources, nil
}

func (d *GoogleDirectory) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Interval, error) {
	resp, err := d.svc.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(d.pageSize).
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	intervals := make([]Interval, 0, len(resp.Items))
	for _, item := range resp.Items {
		start, err := eventTime(item.Start, d.location)
		if err != nil {
			continue
		}
		end, err := eventTime(item.End, d.location)
		if err != nil {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals, nil
}

func (d *GoogleDirectory) InsertEvent(ctx context.Context, calendarID string, event Event) (*InsertedEvent, error) {
	payload := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: d.timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: d.timeZone,
		},
	}
	created, err := d.svc.Events.Insert(calendarID, payload).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &InsertedEvent{ID: created.Id, Link: created.HtmlLink}, nil
}

// eventTime resolves an EventDateTime to a concrete instant. All-day events
// carry only a date; they are pinned to midnight in the business location so
// they occupy the whole local day.
func eventTime(edt *gcal.EventDateTime, loc *time.Location) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("calendar: event has no time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	if edt.Date != "" {
		return time.ParseInLocation("2006-01-02", edt.Date, loc)
	}
	return time.Time{}, fmt.Errorf("calendar: event has no time")
}
