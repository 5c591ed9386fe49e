package domain

// EventStatus is the lifecycle label an organizer puts on an event.
// The set is open; only the constants below carry meaning.
type EventStatus string

const (
	EventStatusScheduled EventStatus = "Scheduled"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusCanceled  EventStatus = "Canceled"
)

// DefaultEventStatus is used when the upstream record has no status selected.
const DefaultEventStatus = EventStatusScheduled

// Event represents a normalized event ready for the events page
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description"`
	Start       string      `json:"start" yaml:"start"`
	End         string      `json:"end,omitempty" yaml:"end"`
	Location    string      `json:"location,omitempty" yaml:"location"`
	Link        string      `json:"link,omitempty" yaml:"link"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Status      EventStatus `json:"status" yaml:"status"`
	URL         string      `json:"url" yaml:"url"`

	// Media
	Graphic          string `json:"graphic,omitempty" yaml:"graphic"`
	Flyer            string `json:"flyer,omitempty" yaml:"flyer"`
	InstagramPostURL string `json:"instagramPostURL,omitempty" yaml:"instagramPostURL"`
	EngageURL        string `json:"engageURL,omitempty" yaml:"engageURL"`
}

// Valid reports whether the event can be shown: it needs a title and a start.
func (e *Event) Valid() bool {
	return e.Title != "" && e.Start != ""
}

// EffectiveEnd returns the end timestamp when present, else the start.
func (e *Event) EffectiveEnd() string {
	if e.End != "" {
		return e.End
	}
	return e.Start
}

// HasTag reports whether the event carries the given tag
func (e *Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ValidEvents drops events without a title or start, keeping order.
func ValidEvents(events []Event) []Event {
	valid := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	return valid
}
