package collector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

func title(s string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: s}}}
}

func text(parts ...string) *notionapi.RichTextProperty {
	p := &notionapi.RichTextProperty{}
	for _, s := range parts {
		p.RichText = append(p.RichText, notionapi.RichText{PlainText: s})
	}
	return p
}

func date(t time.Time) *notionapi.Date {
	d := notionapi.Date(t)
	return &d
}

func TestToEventFullRecord(t *testing.T) {
	start := time.Date(2025, 11, 10, 18, 0, 0, 0, time.FixedZone("EST", -5*3600))
	end := start.Add(90 * time.Minute)

	page := notionapi.Page{
		ID:  "evt-1",
		URL: "https://notion.so/evt-1",
		Properties: notionapi.Properties{
			propName:        title("  General Body Meeting "),
			propDate:        &notionapi.DateProperty{Date: &notionapi.DateObject{Start: date(start), End: date(end)}},
			propDescription: text("Weekly ", "meeting. "),
			propLocation:    text("Kimmel 406"),
			propLink:        &notionapi.URLProperty{URL: "https://example.com/gbm"},
			propTags: &notionapi.MultiSelectProperty{MultiSelect: []notionapi.Option{
				{Name: "General Meeting"}, {Name: ""}, {Name: "Weekly"},
			}},
			propStatus: &notionapi.SelectProperty{Select: notionapi.Option{Name: "Completed"}},
			propGraphic: &notionapi.FilesProperty{Files: []notionapi.File{{
				Type:     "file",
				File:     &notionapi.FileObject{URL: "https://files.notion.so/g.png"},
				External: &notionapi.FileObject{URL: "https://cdn.example.com/g.png"},
			}}},
			propFlyer: &notionapi.FilesProperty{Files: []notionapi.File{{
				Type:     "external",
				External: &notionapi.FileObject{URL: "https://example.com/flyer.pdf"},
			}}},
			propInstagram: &notionapi.URLProperty{URL: "instagram.com/p/abc"},
			propEngage:    &notionapi.URLProperty{URL: "https://engage.nyu.edu/colorstack"},
		},
	}

	e := ToEvent(page)

	assert.Equal(t, "evt-1", e.ID)
	assert.Equal(t, "General Body Meeting", e.Title)
	assert.Equal(t, "Weekly meeting.", e.Description)
	assert.Equal(t, "2025-11-10T18:00:00-05:00", e.Start)
	assert.Equal(t, "2025-11-10T19:30:00-05:00", e.End)
	assert.Equal(t, "Kimmel 406", e.Location)
	assert.Equal(t, "https://example.com/gbm", e.Link)
	assert.Equal(t, []string{"General Meeting", "Weekly"}, e.Tags)
	assert.Equal(t, domain.EventStatusCompleted, e.Status)
	assert.Equal(t, "https://notion.so/evt-1", e.URL)
	assert.Equal(t, "https://files.notion.so/g.png", e.Graphic)
	assert.Equal(t, "https://example.com/flyer.pdf", e.Flyer)
	assert.Equal(t, "https://www.instagram.com/p/abc", e.InstagramPostURL)
	assert.Equal(t, "https://engage.nyu.edu/colorstack", e.EngageURL)
}

func TestToEventDateOnly(t *testing.T) {
	page := notionapi.Page{
		Properties: notionapi.Properties{
			propName: title("Picnic"),
			propDate: &notionapi.DateProperty{Date: &notionapi.DateObject{
				Start: date(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
			}},
		},
	}

	e := ToEvent(page)
	assert.Equal(t, "2025-05-01T00:00:00Z", e.Start)
	assert.Empty(t, e.End)
}

func TestToEventMidnightUTCKeepsTime(t *testing.T) {
	var dateProp notionapi.DateProperty
	require.NoError(t, json.Unmarshal([]byte(`{"id":"d","type":"date","date":{"start":"2025-11-10T00:00:00.000Z","end":"2025-11-10T01:30:00.000Z"}}`), &dateProp))
	page := notionapi.Page{
		Properties: notionapi.Properties{
			propName: title("Evening Social"),
			propDate: &dateProp,
		},
	}

	e := ToEvent(page)
	assert.Equal(t, "2025-11-10T00:00:00Z", e.Start)
	assert.Equal(t, "2025-11-10T01:30:00Z", e.End)

	start, err := time.Parse(time.RFC3339, e.Start)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, e.End)
	require.NoError(t, err)
	assert.True(t, start.Before(end))
}

func TestToEventDefaultsAndGuards(t *testing.T) {
	tests := []struct {
		name  string
		props notionapi.Properties
		check func(t *testing.T, e domain.Event)
	}{
		{
			name:  "no properties at all",
			props: nil,
			check: func(t *testing.T, e domain.Event) {
				assert.Empty(t, e.Title)
				assert.Empty(t, e.Start)
				assert.NotNil(t, e.Tags)
				assert.Empty(t, e.Tags)
				assert.Equal(t, domain.EventStatusScheduled, e.Status)
				assert.False(t, e.Valid())
			},
		},
		{
			name: "properties of the wrong kind",
			props: notionapi.Properties{
				propName:   text("not a title"),
				propDate:   &notionapi.URLProperty{URL: "2025-01-01"},
				propTags:   &notionapi.SelectProperty{Select: notionapi.Option{Name: "x"}},
				propStatus: &notionapi.MultiSelectProperty{},
				propFlyer:  &notionapi.URLProperty{URL: "https://x.com/f.pdf"},
			},
			check: func(t *testing.T, e domain.Event) {
				assert.Empty(t, e.Title)
				assert.Empty(t, e.Start)
				assert.Empty(t, e.Tags)
				assert.Equal(t, domain.EventStatusScheduled, e.Status)
				assert.Empty(t, e.Flyer)
			},
		},
		{
			name: "nil typed properties",
			props: notionapi.Properties{
				propName:    (*notionapi.TitleProperty)(nil),
				propDate:    &notionapi.DateProperty{},
				propGraphic: &notionapi.FilesProperty{Files: []notionapi.File{{Type: "file"}}},
			},
			check: func(t *testing.T, e domain.Event) {
				assert.Empty(t, e.Title)
				assert.Empty(t, e.Start)
				assert.Empty(t, e.Graphic)
			},
		},
		{
			name: "non instagram social link is dropped",
			props: notionapi.Properties{
				propInstagram: &notionapi.URLProperty{URL: "https://tiktok.com/@colorstack"},
			},
			check: func(t *testing.T, e domain.Event) {
				assert.Empty(t, e.InstagramPostURL)
			},
		},
		{
			name: "empty title run",
			props: notionapi.Properties{
				propName: &notionapi.TitleProperty{Title: []notionapi.RichText{}},
			},
			check: func(t *testing.T, e domain.Event) {
				assert.Empty(t, e.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e domain.Event
			require.NotPanics(t, func() {
				e = ToEvent(notionapi.Page{ID: "x", Properties: tt.props})
			})
			tt.check(t, e)
		})
	}
}

func TestToMember(t *testing.T) {
	emoji := notionapi.Emoji("🚀")
	page := notionapi.Page{
		ID:   "m-1",
		URL:  "https://notion.so/m-1",
		Icon: &notionapi.Icon{Type: "emoji", Emoji: &emoji},
		Properties: notionapi.Properties{
			propName:     title("Michael Chen "),
			propPosition: &notionapi.SelectProperty{Select: notionapi.Option{Name: "Vice President"}},
			propYear:     &notionapi.SelectProperty{Select: notionapi.Option{Name: "Junior"}},
			propMajor:    text("Computer Science"),
			propMinor:    text(""),
			propEmail:    &notionapi.EmailProperty{Email: "vp@colorstack.nyu.edu"},
			propPhone:    &notionapi.PhoneNumberProperty{PhoneNumber: "+1 212 555 0100"},
			propLinkedIn: &notionapi.URLProperty{URL: "linkedin.com/in/mchen"},
			propQuote:    text("Ship it."),
		},
	}

	m := ToMember(page)

	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, "Michael Chen", m.Name)
	assert.Equal(t, "Vice President", m.Role)
	assert.Equal(t, "Junior", m.Year)
	assert.Equal(t, "Computer Science", m.Major)
	assert.Empty(t, m.Minor)
	assert.Equal(t, "vp@colorstack.nyu.edu", m.Email)
	assert.Equal(t, "+1 212 555 0100", m.Phone)
	assert.Equal(t, &domain.Icon{Type: domain.IconTypeEmoji, Value: "🚀"}, m.Icon)
	assert.Equal(t, "https://www.linkedin.com/in/mchen", m.LinkedInURL)
	assert.Equal(t, "Ship it.", m.Quote)
	assert.False(t, m.HallOfFame)
}

func TestToMemberDefaults(t *testing.T) {
	m := ToMember(notionapi.Page{ID: "m-2"})
	assert.Equal(t, domain.DefaultRole, m.Role)
	assert.Nil(t, m.Icon)
	assert.Empty(t, m.LinkedInURL)
	assert.False(t, m.HallOfFame)

	alum := ToMember(notionapi.Page{Properties: notionapi.Properties{
		propPosition: &notionapi.SelectProperty{Select: notionapi.Option{Name: "Alumni"}},
	}})
	assert.True(t, alum.HallOfFame)
}

func TestPickIcon(t *testing.T) {
	emoji := notionapi.Emoji("🎓")
	empty := notionapi.Emoji("")

	tests := []struct {
		name string
		icon *notionapi.Icon
		want *domain.Icon
	}{
		{name: "nil", icon: nil, want: nil},
		{name: "emoji", icon: &notionapi.Icon{Type: "emoji", Emoji: &emoji}, want: &domain.Icon{Type: domain.IconTypeEmoji, Value: "🎓"}},
		{name: "empty emoji", icon: &notionapi.Icon{Type: "emoji", Emoji: &empty}, want: nil},
		{name: "emoji without payload", icon: &notionapi.Icon{Type: "emoji"}, want: nil},
		{
			name: "external",
			icon: &notionapi.Icon{Type: "external", External: &notionapi.FileObject{URL: "https://img.example.com/a.png"}},
			want: &domain.Icon{Type: domain.IconTypeURL, Value: "https://img.example.com/a.png"},
		},
		{
			name: "file",
			icon: &notionapi.Icon{Type: "file", File: &notionapi.FileObject{URL: "https://files.notion.so/a.png"}},
			want: &domain.Icon{Type: domain.IconTypeURL, Value: "https://files.notion.so/a.png"},
		},
		{name: "file without payload", icon: &notionapi.Icon{Type: "file"}, want: nil},
		{name: "unknown type", icon: &notionapi.Icon{Type: "custom_emoji"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickIcon(tt.icon))
		})
	}
}
