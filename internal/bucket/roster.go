// Package bucket splits normalized records into the groups the site pages show.
package bucket

import "github.com/colorstacknyu/colorstack-site/internal/domain"

// LeadershipTitles are the club positions shown in the leadership section
var LeadershipTitles = map[string]bool{
	"President":                true,
	"Vice President":           true,
	"Treasurer":                true,
	"Chief of Staff":           true,
	"Lead Developer":           true,
	"Director of Partnerships": true,
	"Director of Events":       true,
	"Director of Outreach":     true,
	"Faculty Advisor":          true,
}

// IsLeadership reports whether role is a leadership title
func IsLeadership(role string) bool {
	return LeadershipTitles[role]
}

// PartitionRoster splits members into leadership, core and Hall of Fame.
// Alumni go to Hall of Fame only, whatever else their record says.
// Order within each group follows the input.
func PartitionRoster(members []domain.Member) domain.Roster {
	r := domain.Roster{
		Leadership: []domain.Member{},
		Core:       []domain.Member{},
		HallOfFame: []domain.Member{},
	}

	for _, m := range members {
		switch {
		case m.HallOfFame:
			r.HallOfFame = append(r.HallOfFame, m)
		case IsLeadership(m.Role):
			r.Leadership = append(r.Leadership, m)
		default:
			r.Core = append(r.Core, m)
		}
	}
	return r
}
