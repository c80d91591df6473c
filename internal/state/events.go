package state

import "github.com/five82/legtrack/internal/catalog"

// Event is a user action that moves a session to its next State.
type Event interface {
	apply(State) State
}

// Apply returns the State that follows e. A nil event leaves s unchanged.
func Apply(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}

// SelectJurisdiction picks a jurisdiction type, or catalog.All.
type SelectJurisdiction struct{ Jurisdiction string }

func (e SelectJurisdiction) apply(s State) State {
	return s.withCriteria(s.criteria.WithJurisdiction(e.Jurisdiction))
}

// SelectStatus picks a status, or catalog.All.
type SelectStatus struct{ Status string }

func (e SelectStatus) apply(s State) State {
	return s.withCriteria(s.criteria.WithStatus(e.Status))
}

// ToggleTag activates a tag, or clears the tag filter when it is already
// the active tag.
type ToggleTag struct{ Tag string }

func (e ToggleTag) apply(s State) State {
	tag := e.Tag
	if tag == s.criteria.Tag {
		tag = ""
	}
	return s.withCriteria(s.criteria.WithTag(tag))
}

// SetSearch replaces the free-text search input.
type SetSearch struct{ Text string }

func (e SetSearch) apply(s State) State {
	return s.withCriteria(s.criteria.WithSearch(e.Text))
}

// ToggleRow expands or collapses one record.
type ToggleRow struct{ ID string }

func (e ToggleRow) apply(s State) State {
	s.expanded = ToggleExpansion(s.expanded, e.ID)
	return s
}

// Reset restores the default criteria and collapses any expanded record.
type Reset struct{}

func (Reset) apply(s State) State {
	return s.withCriteria(catalog.DefaultCriteria())
}
