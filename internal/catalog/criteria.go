package catalog

import (
	"strings"

	"github.com/five82/legtrack/internal/legislation"
)

// All is the wildcard jurisdiction and status value.
const All = "all"

// Criteria selects the visible subset of a record set. The zero value is not
// the default; use DefaultCriteria.
type Criteria struct {
	Jurisdiction string
	Status       string
	// Tag is empty when no tag filter is active.
	Tag    string
	Search string
}

// DefaultCriteria matches every record.
func DefaultCriteria() Criteria {
	return Criteria{Jurisdiction: All, Status: All}
}

// Normalized returns c with blank selectors widened to All and the search
// text trimmed and lowercased.
func (c Criteria) Normalized() Criteria {
	out := c
	out.Jurisdiction = strings.TrimSpace(out.Jurisdiction)
	if out.Jurisdiction == "" {
		out.Jurisdiction = All
	}
	out.Status = strings.TrimSpace(out.Status)
	if out.Status == "" {
		out.Status = All
	}
	out.Tag = strings.TrimSpace(out.Tag)
	out.Search = NormalizeSearch(out.Search)
	return out
}

// IsDefault reports whether c matches everything.
func (c Criteria) IsDefault() bool {
	return c.Normalized() == DefaultCriteria()
}

// WithJurisdiction returns c filtered to one jurisdiction type, or All.
func (c Criteria) WithJurisdiction(j string) Criteria {
	c.Jurisdiction = j
	return c.Normalized()
}

// WithStatus returns c filtered to one status, or All.
func (c Criteria) WithStatus(s string) Criteria {
	c.Status = s
	return c.Normalized()
}

// WithTag returns c filtered to one tag; an empty tag clears the filter.
func (c Criteria) WithTag(tag string) Criteria {
	c.Tag = tag
	return c.Normalized()
}

// WithSearch returns c with new free-text search input.
func (c Criteria) WithSearch(text string) Criteria {
	c.Search = text
	return c.Normalized()
}

// NormalizeSearch trims and lowercases raw search input.
func NormalizeSearch(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func jurisdictionOf(r legislation.Record) string {
	return string(r.JurisdictionType)
}
