// Package resource reads and checks the curated resources.json flat file.
package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/internal/links"
)

const dateLayout = "2006-01-02"

type envelope struct {
	Resources []domain.Resource `json:"resources"`
}

// Parse decodes resources.json. Both {"resources": [...]} and a bare array
// are accepted; an envelope without the key yields no resources.
func Parse(data []byte) ([]domain.Resource, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("resources: empty document")
	}

	var resources []domain.Resource
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &resources); err != nil {
			return nil, fmt.Errorf("resources: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("resources: %w", err)
		}
		resources = env.Resources
	}

	if resources == nil {
		resources = []domain.Resource{}
	}
	return resources, nil
}

// LoadFile reads and parses the file at path
func LoadFile(path string) ([]domain.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Filter keeps resources in category that carry tag.
// Empty arguments match everything; tags compare case-insensitively.
func Filter(resources []domain.Resource, category, tag string) []domain.Resource {
	filtered := []domain.Resource{}
	for _, r := range resources {
		if category != "" && r.Category != category {
			continue
		}
		if tag != "" && !hasTag(r, tag) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func hasTag(r domain.Resource, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// CountByCategory returns the number of resources per known category, in
// display order. Unknown categories are counted under their own name at the end.
func CountByCategory(resources []domain.Resource) []CategoryCount {
	counts := make(map[string]int)
	for _, r := range resources {
		counts[r.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for _, c := range domain.ResourceCategories {
		out = append(out, CategoryCount{Category: string(c), Count: counts[string(c)]})
		delete(counts, string(c))
	}
	for _, r := range resources {
		if n, ok := counts[r.Category]; ok {
			out = append(out, CategoryCount{Category: r.Category, Count: n})
			delete(counts, r.Category)
		}
	}
	return out
}

// CategoryCount is one row of CountByCategory
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Problem is one validation failure
type Problem struct {
	Index   int    `json:"index"`
	ID      string `json:"id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) Error() string {
	if p.ID != "" {
		return fmt.Sprintf("resources[%d] (%s): %s %s", p.Index, p.ID, p.Field, p.Message)
	}
	return fmt.Sprintf("resources[%d]: %s %s", p.Index, p.Field, p.Message)
}

// Validate checks every resource and returns the problems found, in file order.
func Validate(resources []domain.Resource) []Problem {
	var problems []Problem
	seen := make(map[string]int)

	for i, r := range resources {
		report := func(field, msg string) {
			problems = append(problems, Problem{Index: i, ID: r.ID, Field: field, Message: msg})
		}

		if strings.TrimSpace(r.ID) == "" {
			report("id", "is required")
		} else if first, dup := seen[r.ID]; dup {
			report("id", fmt.Sprintf("duplicates resources[%d]", first))
		} else {
			seen[r.ID] = i
		}

		if strings.TrimSpace(r.Title) == "" {
			report("title", "is required")
		}
		if strings.TrimSpace(r.Description) == "" {
			report("description", "is required")
		}

		if strings.TrimSpace(r.Link) == "" {
			report("link", "is required")
		} else if !validLink(r.Link) {
			report("link", fmt.Sprintf("%q is not a usable URL", r.Link))
		}

		if !domain.IsResourceCategory(r.Category) {
			report("category", fmt.Sprintf("%q is not one of the resource categories", r.Category))
		}

		if _, err := time.Parse(dateLayout, r.DateAdded); err != nil {
			report("dateAdded", fmt.Sprintf("%q is not a YYYY-MM-DD date", r.DateAdded))
		}

		for _, t := range r.Tags {
			if strings.TrimSpace(t) == "" {
				report("tags", "contains an empty tag")
				break
			}
		}
	}
	return problems
}

// validLink accepts anything that normalizes to an absolute URL with a host
func validLink(raw string) bool {
	u, err := url.Parse(links.Normalize(raw))
	if err != nil {
		return false
	}
	return u.Host != "" && !strings.ContainsAny(u.Host, " \t")
}
