// Package calendar exports events to calendar apps: Google Calendar
// "add event" links and an iCalendar feed.
package calendar

import (
	"net/url"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/colorstacknyu/colorstack-site/internal/bucket"
	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/internal/links"
)

const (
	googleRenderURL = "https://calendar.google.com/calendar/render"
	googleTimeFmt   = "20060102T150405Z"

	ProductID = "-//ColorStack NYU//Events//EN"
	uidDomain = "colorstack-nyu"
)

// GoogleURL builds the Google Calendar template link for e.
// It returns "" when the start cannot be parsed.
func GoogleURL(e domain.Event, loc *time.Location) string {
	start, end, ok := span(e, loc)
	if !ok {
		return ""
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", start.UTC().Format(googleTimeFmt)+"/"+end.UTC().Format(googleTimeFmt))
	q.Set("details", e.Description)
	q.Set("location", e.Location)

	return googleRenderURL + "?" + q.Encode()
}

// Feed renders events as an iCalendar document.
// Events without a parseable start are left out; canceled events are kept
// with STATUS:CANCELLED so subscribers drop them.
func Feed(events []domain.Event, loc *time.Location, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName("ColorStack @ NYU Events")
	if loc != nil {
		cal.SetXWRTimezone(loc.String())
	}

	for _, e := range events {
		start, end, ok := span(e, loc)
		if !ok {
			continue
		}

		ev := cal.AddEvent(uid(e))
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if link := eventURL(e); link != "" {
			ev.SetURL(link)
		}
		switch e.Status {
		case domain.EventStatusCanceled:
			ev.SetStatus(ical.ObjectStatusCancelled)
		default:
			ev.SetStatus(ical.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize()
}

// span resolves the start and end; a missing or unparseable end collapses
// to the start.
func span(e domain.Event, loc *time.Location) (time.Time, time.Time, bool) {
	start, err := bucket.ParseTime(e.Start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end := start
	if e.End != "" {
		if t, err := bucket.ParseTime(e.End, loc); err == nil && !t.Before(start) {
			end = t
		}
	}
	return start, end, true
}

func uid(e domain.Event) string {
	if e.ID != "" {
		return e.ID + "@" + uidDomain
	}
	// Stable across renders so calendar apps update rather than duplicate.
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(e.Title+"|"+e.Start)).String() + "@" + uidDomain
}

func eventURL(e domain.Event) string {
	if link := links.Normalize(e.Link); link != "" {
		return link
	}
	return e.URL
}
