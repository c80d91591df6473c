package state

import (
	"slices"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

// State is one immutable step of a browsing session.
type State struct {
	records    []legislation.Record
	criteria   catalog.Criteria
	expanded   string
	visible    []legislation.Record
	tagOptions []catalog.TagCount
}

// New starts a session over records with default criteria and nothing
// expanded.
func New(records []legislation.Record) State {
	records = slices.Clone(records)
	s := State{
		records:    records,
		criteria:   catalog.DefaultCriteria(),
		tagOptions: catalog.TagFrequency(records),
	}
	return s.recompute()
}

// Criteria returns the active filter criteria.
func (s State) Criteria() catalog.Criteria { return s.criteria }

// Expanded returns the expanded record id, or "" when nothing is expanded.
func (s State) Expanded() string { return s.expanded }

// ExpandedRecord returns the expanded record when it is visible.
func (s State) ExpandedRecord() (legislation.Record, bool) {
	if s.expanded == "" {
		return legislation.Record{}, false
	}
	for _, r := range s.visible {
		if r.ID == s.expanded {
			return r, true
		}
	}
	return legislation.Record{}, false
}

// Total returns the size of the full record set.
func (s State) Total() int { return len(s.records) }

// Output is the render-facing view of a State.
type Output struct {
	Visible      []legislation.Record
	VisibleCount int
	Total        int
	NoResults    bool
	TagOptions   []catalog.TagCount
	Expanded     string
}

// Output returns copies of the derived values.
func (s State) Output() Output {
	return Output{
		Visible:      slices.Clone(s.visible),
		VisibleCount: len(s.visible),
		Total:        len(s.records),
		NoResults:    len(s.visible) == 0,
		TagOptions:   slices.Clone(s.tagOptions),
		Expanded:     s.expanded,
	}
}

// withCriteria installs new criteria. The expansion is always cleared.
func (s State) withCriteria(c catalog.Criteria) State {
	s.criteria = c.Normalized()
	s.expanded = ""
	return s.recompute()
}

func (s State) recompute() State {
	s.visible = catalog.Visible(s.records, s.criteria)
	return s
}

// ToggleExpansion returns the expanded id after clicking a row: clicking the
// expanded row collapses it, any other row becomes the only expanded one.
func ToggleExpansion(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}
