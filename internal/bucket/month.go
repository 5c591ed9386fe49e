package bucket

import (
	"time"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

// MonthGroup holds the events starting in one calendar month
type MonthGroup struct {
	Key    string         `json:"key"` // YYYY-MM
	Label  string         `json:"label"`
	Month  time.Time      `json:"month"`
	Events []domain.Event `json:"events"`
}

// GroupByMonth groups events by the month of their start, in loc.
// Groups appear in the order their first event appears, so a sorted input
// gives sorted groups. Events with an unparseable start are skipped.
func GroupByMonth(events []domain.Event, loc *time.Location) []MonthGroup {
	if loc == nil {
		loc = time.UTC
	}

	var groups []MonthGroup
	index := make(map[string]int)

	for _, e := range events {
		start, err := ParseTime(e.Start, loc)
		if err != nil {
			continue
		}
		month := truncateMonth(start.In(loc))
		key := month.Format("2006-01")

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{
				Key:   key,
				Label: month.Format("January 2006"),
				Month: month,
			})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}

func truncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
