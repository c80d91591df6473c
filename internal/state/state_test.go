package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

func sample() []legislation.Record {
	return []legislation.Record{
		{ID: "fed-001", JurisdictionType: legislation.Federal, Status: "active", Tags: []string{"safety"}},
		{ID: "fed-002", JurisdictionType: legislation.Federal, Status: "rescinded", Tags: []string{"safety", "frontier_ai"}},
		{ID: "state-001", JurisdictionType: legislation.State, Status: "enacted", Title: "Colorado AI Act"},
		{ID: "intl-001", JurisdictionType: legislation.International, Status: "adopted", Tags: []string{"frontier_ai"}},
	}
}

func visibleIDs(s State) []string {
	var out []string
	for _, r := range s.Output().Visible {
		out = append(out, r.ID)
	}
	return out
}

func TestToggleExpansion(t *testing.T) {
	if got := ToggleExpansion("fed-001", "fed-001"); got != "" {
		t.Fatalf("same id should collapse, got %q", got)
	}
	if got := ToggleExpansion("fed-001", "fed-002"); got != "fed-002" {
		t.Fatalf("other id should expand, got %q", got)
	}
	if got := ToggleExpansion("", "fed-001"); got != "fed-001" {
		t.Fatalf("nothing expanded should expand, got %q", got)
	}
}

func TestNewShowsEverything(t *testing.T) {
	s := New(sample())
	out := s.Output()
	if out.VisibleCount != 4 || out.Total != 4 || out.NoResults {
		t.Fatalf("output = %+v, want 4 of 4 visible", out)
	}
	if out.Expanded != "" {
		t.Fatalf("expanded = %q, want none", out.Expanded)
	}
	want := []catalog.TagCount{{Tag: "safety", Count: 2}, {Tag: "frontier_ai", Count: 2}}
	if diff := cmp.Diff(want, out.TagOptions); diff != "" {
		t.Fatalf("tag options (-want +got):\n%s", diff)
	}
}

func TestCriteriaEventsClearExpansion(t *testing.T) {
	events := []struct {
		name  string
		event Event
	}{
		{"jurisdiction", SelectJurisdiction{Jurisdiction: "federal"}},
		{"status", SelectStatus{Status: "active"}},
		{"tag", ToggleTag{Tag: "safety"}},
		{"search", SetSearch{Text: "fed"}},
		{"reset", Reset{}},
	}
	for _, tt := range events {
		t.Run(tt.name, func(t *testing.T) {
			s := Apply(New(sample()), ToggleRow{ID: "fed-001"})
			if s.Expanded() != "fed-001" {
				t.Fatalf("setup: expanded = %q", s.Expanded())
			}
			s = Apply(s, tt.event)
			if s.Expanded() != "" {
				t.Fatalf("expanded = %q after %s, want none", s.Expanded(), tt.name)
			}
		})
	}
}

func TestExpansionClearedEvenWhenStillVisible(t *testing.T) {
	s := Apply(New(sample()), ToggleRow{ID: "fed-001"})
	s = Apply(s, SelectJurisdiction{Jurisdiction: "federal"})
	if got := visibleIDs(s); !cmp.Equal(got, []string{"fed-001", "fed-002"}) {
		t.Fatalf("visible = %v", got)
	}
	if _, ok := s.ExpandedRecord(); ok {
		t.Fatalf("expected no expanded record")
	}
}

func TestToggleRowLeavesCriteria(t *testing.T) {
	s := Apply(New(sample()), SelectStatus{Status: "enacted"})
	before := s.Criteria()
	s = Apply(s, ToggleRow{ID: "intl-001"})
	if s.Criteria() != before {
		t.Fatalf("criteria changed: %+v -> %+v", before, s.Criteria())
	}
	r, ok := s.ExpandedRecord()
	if !ok || r.ID != "intl-001" {
		t.Fatalf("expanded record = %+v, %v", r, ok)
	}
	s = Apply(s, ToggleRow{ID: "intl-001"})
	if s.Expanded() != "" {
		t.Fatalf("second toggle should collapse, got %q", s.Expanded())
	}
}

func TestStatusSynonymIsOneDirectional(t *testing.T) {
	s := Apply(New(sample()), SelectStatus{Status: "enacted"})
	if got := visibleIDs(s); !cmp.Equal(got, []string{"state-001", "intl-001"}) {
		t.Fatalf("enacted visible = %v", got)
	}
	s = Apply(s, SelectStatus{Status: "adopted"})
	if got := visibleIDs(s); !cmp.Equal(got, []string{"intl-001"}) {
		t.Fatalf("adopted visible = %v", got)
	}
}

func TestToggleTagTwiceClears(t *testing.T) {
	s := Apply(New(sample()), ToggleTag{Tag: "frontier_ai"})
	if got := visibleIDs(s); !cmp.Equal(got, []string{"fed-002", "intl-001"}) {
		t.Fatalf("tagged visible = %v", got)
	}
	s = Apply(s, ToggleTag{Tag: "frontier_ai"})
	if s.Criteria().Tag != "" || len(visibleIDs(s)) != 4 {
		t.Fatalf("second toggle should clear tag, criteria=%+v", s.Criteria())
	}
	s = Apply(s, ToggleTag{Tag: "safety"})
	s = Apply(s, ToggleTag{Tag: "frontier_ai"})
	if s.Criteria().Tag != "frontier_ai" {
		t.Fatalf("toggling another tag should switch, got %q", s.Criteria().Tag)
	}
}

func TestNoResultsAndReset(t *testing.T) {
	s := Apply(New(sample()), SetSearch{Text: "  nothing matches this  "})
	out := s.Output()
	if !out.NoResults || out.VisibleCount != 0 || out.Total != 4 {
		t.Fatalf("output = %+v, want no results", out)
	}
	if s.Criteria().Search != "nothing matches this" {
		t.Fatalf("search not normalized: %q", s.Criteria().Search)
	}

	s = Apply(s, SelectJurisdiction{Jurisdiction: "state"})
	s = Apply(s, Reset{})
	if s.Criteria() != catalog.DefaultCriteria() {
		t.Fatalf("reset criteria = %+v", s.Criteria())
	}
	if got := visibleIDs(s); !cmp.Equal(got, []string{"fed-001", "fed-002", "state-001", "intl-001"}) {
		t.Fatalf("reset visible = %v", got)
	}
}

func TestOutputIsACopy(t *testing.T) {
	s := New(sample())
	out := s.Output()
	out.Visible[0].ID = "mutated"
	out.TagOptions[0].Count = 99
	again := s.Output()
	if again.Visible[0].ID != "fed-001" || again.TagOptions[0].Count != 2 {
		t.Fatalf("output shares memory with state: %+v", again)
	}
}

func TestApplyNilEvent(t *testing.T) {
	s := Apply(New(sample()), ToggleRow{ID: "fed-002"})
	if got := Apply(s, nil); got.Expanded() != "fed-002" {
		t.Fatalf("nil event changed state")
	}
}
