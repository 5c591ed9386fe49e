package bucket

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

// Schedule is the events page split into upcoming and past
type Schedule struct {
	Upcoming []domain.Event `json:"upcoming"`
	Past     []domain.Event `json:"past"`
}

// timeLayouts accepted for event timestamps, tried in order.
// Layouts without a zone are read in the site's location.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime reads an event timestamp
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time: %q", s)
}

// SplitSchedule sorts events into upcoming and past.
//
// Upcoming: status is Scheduled and the effective end (end, else start) is at
// or after now. Past: status is Completed, or the effective end is before now
// and the status is not Canceled. Canceled events appear in neither list, and
// so do future events with any status other than Scheduled or Completed.
//
// Upcoming is sorted soonest first, past most recent first.
func SplitSchedule(events []domain.Event, now time.Time, loc *time.Location) Schedule {
	s := Schedule{
		Upcoming: []domain.Event{},
		Past:     []domain.Event{},
	}

	for _, e := range events {
		switch classify(e, now, loc) {
		case slotUpcoming:
			s.Upcoming = append(s.Upcoming, e)
		case slotPast:
			s.Past = append(s.Past, e)
		}
	}

	slices.SortStableFunc(s.Upcoming, func(a, b domain.Event) int {
		return startTime(a, loc).Compare(startTime(b, loc))
	})
	slices.SortStableFunc(s.Past, func(a, b domain.Event) int {
		return startTime(b, loc).Compare(startTime(a, loc))
	})
	return s
}

type slot int

const (
	slotNone slot = iota
	slotUpcoming
	slotPast
)

func classify(e domain.Event, now time.Time, loc *time.Location) slot {
	if e.Status == domain.EventStatusCompleted {
		return slotPast
	}

	effective, err := ParseTime(e.EffectiveEnd(), loc)
	if err != nil {
		// Without a usable time only the status can place the event.
		return slotNone
	}

	if e.Status == domain.EventStatusScheduled && !effective.Before(now) {
		return slotUpcoming
	}
	if effective.Before(now) && e.Status != domain.EventStatusCanceled {
		return slotPast
	}
	return slotNone
}

// startTime is used for ordering; unparseable starts sort first.
func startTime(e domain.Event, loc *time.Location) time.Time {
	t, err := ParseTime(e.Start, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Tags returns every tag used by the events, sorted and de-duplicated
func Tags(events []domain.Event) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, e := range events {
		for _, t := range e.Tags {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	return tags
}

// FilterByTag keeps events carrying tag. An empty tag keeps everything.
func FilterByTag(events []domain.Event, tag string) []domain.Event {
	if tag == "" {
		return events
	}
	filtered := []domain.Event{}
	for _, e := range events {
		if e.HasTag(tag) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
