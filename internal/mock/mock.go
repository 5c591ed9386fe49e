// Package mock serves the fixed offline datasets used in development when
// Notion credentials are missing.
package mock

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

//go:embed data/*.yaml
var files embed.FS

// Events returns the offline events in their stored order
func Events() ([]domain.Event, error) {
	var events []domain.Event
	if err := decode("data/events.yaml", &events); err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Status == "" {
			events[i].Status = domain.DefaultEventStatus
		}
		if events[i].Tags == nil {
			events[i].Tags = []string{}
		}
	}
	return events, nil
}

// Roster returns the offline team, already grouped
func Roster() (domain.Roster, error) {
	var r domain.Roster
	if err := decode("data/team.yaml", &r); err != nil {
		return domain.Roster{}, err
	}
	if r.Leadership == nil {
		r.Leadership = []domain.Member{}
	}
	if r.Core == nil {
		r.Core = []domain.Member{}
	}
	if r.HallOfFame == nil {
		r.HallOfFame = []domain.Member{}
	}
	return r, nil
}

func decode(name string, v any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
