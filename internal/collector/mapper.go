package collector

import (
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/internal/links"
)

// Property names in the events database
const (
	propName        = "Name"
	propDate        = "Date"
	propDescription = "Description"
	propLocation    = "Location"
	propLink        = "Link"
	propTags        = "Tags"
	propStatus      = "Status"
	propGraphic     = "Graphic"
	propFlyer       = "Flyer"
	propInstagram   = "InstagramPostURL"
	propEngage      = "EngageURL"
)

// Property names in the team database
const (
	propPosition = "Club Position"
	propYear     = "Year"
	propMajor    = "Major"
	propMinor    = "Minor"
	propEmail    = "Email"
	propPhone    = "Phone"
	propLinkedIn = "Linked-In"
	propQuote    = "Quote"
)

// ToEvent maps one events-database page. It never fails: properties that are
// missing or of an unexpected kind come back empty.
func ToEvent(p notionapi.Page) domain.Event {
	props := p.Properties
	start, end := dateRange(props, propDate)

	status := domain.EventStatus(selectName(props, propStatus))
	if status == "" {
		status = domain.DefaultEventStatus
	}

	instagram := links.Normalize(urlValue(props, propInstagram))
	if !links.IsInstagram(instagram) {
		instagram = ""
	}

	return domain.Event{
		ID:               string(p.ID),
		Title:            titleText(props, propName),
		Description:      richText(props, propDescription),
		Start:            start,
		End:              end,
		Location:         richText(props, propLocation),
		Link:             urlValue(props, propLink),
		Tags:             multiSelectNames(props, propTags),
		Status:           status,
		URL:              p.URL,
		Graphic:          fileURL(props, propGraphic),
		Flyer:            fileURL(props, propFlyer),
		InstagramPostURL: instagram,
		EngageURL:        urlValue(props, propEngage),
	}
}

// ToMember maps one team-database page.
func ToMember(p notionapi.Page) domain.Member {
	props := p.Properties

	role := selectName(props, propPosition)
	if role == "" {
		role = domain.DefaultRole
	}

	return domain.Member{
		ID:          string(p.ID),
		Name:        titleText(props, propName),
		Role:        role,
		Year:        selectName(props, propYear),
		Major:       richText(props, propMajor),
		Minor:       richText(props, propMinor),
		Email:       emailValue(props, propEmail),
		Phone:       phoneValue(props, propPhone),
		Icon:        pickIcon(p.Icon),
		URL:         p.URL,
		LinkedInURL: links.Normalize(urlValue(props, propLinkedIn)),
		HallOfFame:  domain.IsAlumni(role),
		Quote:       richText(props, propQuote),
	}
}

// pickIcon collapses the three icon shapes into emoji or url.
func pickIcon(icon *notionapi.Icon) *domain.Icon {
	if icon == nil {
		return nil
	}
	switch string(icon.Type) {
	case "emoji":
		if icon.Emoji == nil || *icon.Emoji == "" {
			return nil
		}
		return &domain.Icon{Type: domain.IconTypeEmoji, Value: string(*icon.Emoji)}
	case "external":
		if icon.External == nil || icon.External.URL == "" {
			return nil
		}
		return &domain.Icon{Type: domain.IconTypeURL, Value: icon.External.URL}
	case "file":
		if icon.File == nil || icon.File.URL == "" {
			return nil
		}
		return &domain.Icon{Type: domain.IconTypeURL, Value: icon.File.URL}
	}
	return nil
}

func titleText(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.TitleProperty)
	if !ok || p == nil || len(p.Title) == 0 {
		return ""
	}
	return strings.TrimSpace(p.Title[0].PlainText)
}

func richText(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.RichTextProperty)
	if !ok || p == nil {
		return ""
	}
	var b strings.Builder
	for _, rt := range p.RichText {
		b.WriteString(rt.PlainText)
	}
	return strings.TrimSpace(b.String())
}

func selectName(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.SelectProperty)
	if !ok || p == nil {
		return ""
	}
	return p.Select.Name
}

func multiSelectNames(props notionapi.Properties, name string) []string {
	tags := []string{}
	p, ok := props[name].(*notionapi.MultiSelectProperty)
	if !ok || p == nil {
		return tags
	}
	for _, opt := range p.MultiSelect {
		if opt.Name != "" {
			tags = append(tags, opt.Name)
		}
	}
	return tags
}

func urlValue(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.URLProperty)
	if !ok || p == nil {
		return ""
	}
	return p.URL
}

func emailValue(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.EmailProperty)
	if !ok || p == nil {
		return ""
	}
	return p.Email
}

func phoneValue(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.PhoneNumberProperty)
	if !ok || p == nil {
		return ""
	}
	return p.PhoneNumber
}

// fileURL returns the first file's URL, preferring a Notion-hosted upload.
func fileURL(props notionapi.Properties, name string) string {
	p, ok := props[name].(*notionapi.FilesProperty)
	if !ok || p == nil || len(p.Files) == 0 {
		return ""
	}
	f := p.Files[0]
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil && f.External.URL != "" {
		return f.External.URL
	}
	return ""
}

func dateRange(props notionapi.Properties, name string) (start, end string) {
	p, ok := props[name].(*notionapi.DateProperty)
	if !ok || p == nil || p.Date == nil {
		return "", ""
	}
	return formatDate(p.Date.Start), formatDate(p.Date.End)
}

// formatDate renders a Notion date as RFC3339. Dates without a time
// arrive as midnight UTC.
func formatDate(d *notionapi.Date) string {
	if d == nil {
		return ""
	}
	t := time.Time(*d)
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
