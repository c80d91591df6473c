package catalog

import (
	"strings"

	"github.com/five82/legtrack/internal/legislation"
)

const (
	statusEnacted = "enacted"
	statusAdopted = "adopted"
)

// Visible returns the records that pass every criterion, in their original
// order. Unknown jurisdictions, statuses or tags yield an empty result.
func Visible(records []legislation.Record, c Criteria) []legislation.Record {
	c = c.Normalized()
	out := make([]legislation.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes c. c is expected to be
// normalized.
func Matches(r legislation.Record, c Criteria) bool {
	return matchJurisdiction(r, c.Jurisdiction) &&
		matchStatus(r, c.Status) &&
		matchTag(r, c.Tag) &&
		matchSearch(r, c.Search)
}

func matchJurisdiction(r legislation.Record, want string) bool {
	return want == All || want == jurisdictionOf(r)
}

// matchStatus treats "enacted" as also covering "adopted". The reverse is
// not true.
func matchStatus(r legislation.Record, want string) bool {
	if want == All {
		return true
	}
	if strings.EqualFold(want, r.Status) {
		return true
	}
	return strings.EqualFold(want, statusEnacted) && strings.EqualFold(r.Status, statusAdopted)
}

func matchTag(r legislation.Record, tag string) bool {
	return tag == "" || r.HasTag(tag)
}

func matchSearch(r legislation.Record, needle string) bool {
	return needle == "" || strings.Contains(r.SearchText(), needle)
}

// InJurisdiction keeps records whose jurisdiction label contains needle,
// ignoring case. It backs the query command's --in flag and is applied on
// top of Visible.
func InJurisdiction(records []legislation.Record, needle string) []legislation.Record {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return records
	}
	out := make([]legislation.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.JurisdictionLabel()), needle) {
			out = append(out, r)
		}
	}
	return out
}
