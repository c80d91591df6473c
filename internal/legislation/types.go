package legislation

import (
	"slices"
	"strings"
)

// JurisdictionType is the coarse category of a legal source.
type JurisdictionType string

const (
	Federal       JurisdictionType = "federal"
	State         JurisdictionType = "state"
	International JurisdictionType = "international"
)

// Placeholders used when an optional field is missing under every alias.
const (
	FederalLabel        = "US Federal"
	NoDate              = "—"
	NoSummary           = "No summary available."
	NoSource            = "#"
	UnknownVerification = "Unknown"
	UnknownJurisdiction = "Unknown"
	unknownRecordTitle  = "Untitled"
)

// Record mirrors a single entry of the bundled dataset. Several display
// fields may arrive under alternate names; use the accessor methods rather
// than reading the raw fields directly.
type Record struct {
	ID               string           `json:"id" yaml:"id"`
	Title            string           `json:"title,omitempty" yaml:"title,omitempty"`
	Name             string           `json:"name,omitempty" yaml:"name,omitempty"`
	Type             string           `json:"type,omitempty" yaml:"type,omitempty"`
	JurisdictionType JurisdictionType `json:"jurisdiction_type" yaml:"jurisdiction_type"`
	Jurisdiction     string           `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	StateName        string           `json:"state,omitempty" yaml:"state,omitempty"`
	IssuingBody      string           `json:"issuing_body,omitempty" yaml:"issuing_body,omitempty"`
	Status           string           `json:"status" yaml:"status"`
	BillNumber       string           `json:"bill_number,omitempty" yaml:"bill_number,omitempty"`

	EffectiveDate       string `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	DateEffective       string `json:"date_effective,omitempty" yaml:"date_effective,omitempty"`
	FullApplicationDate string `json:"full_application_date,omitempty" yaml:"full_application_date,omitempty"`
	DateIssued          string `json:"date_issued,omitempty" yaml:"date_issued,omitempty"`
	DateIntroduced      string `json:"date_introduced,omitempty" yaml:"date_introduced,omitempty"`
	DateEnacted         string `json:"date_enacted,omitempty" yaml:"date_enacted,omitempty"`
	DateAdopted         string `json:"date_adopted,omitempty" yaml:"date_adopted,omitempty"`
	DateVetoed          string `json:"date_vetoed,omitempty" yaml:"date_vetoed,omitempty"`
	DateRescinded       string `json:"date_rescinded,omitempty" yaml:"date_rescinded,omitempty"`

	Summary       string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	KeyProvisions []string `json:"key_provisions,omitempty" yaml:"key_provisions,omitempty"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	VetoReason    string   `json:"veto_reason,omitempty" yaml:"veto_reason,omitempty"`
	SourceURL     string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	LastVerified  string   `json:"last_verified,omitempty" yaml:"last_verified,omitempty"`
}

// DisplayTitle returns the title, falling back to name.
func (r Record) DisplayTitle() string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	if n := strings.TrimSpace(r.Name); n != "" {
		return n
	}
	return unknownRecordTitle
}

// JurisdictionLabel returns the display string for the record's jurisdiction.
// Federal records always show the fixed federal label.
func (r Record) JurisdictionLabel() string {
	switch r.JurisdictionType {
	case Federal:
		return FederalLabel
	case State:
		return firstNonEmpty(UnknownJurisdiction, r.StateName, r.Jurisdiction)
	default:
		return firstNonEmpty(UnknownJurisdiction, r.Jurisdiction)
	}
}

// EffectiveDateLabel returns the first populated effective date alias.
func (r Record) EffectiveDateLabel() string {
	return firstNonEmpty(NoDate, r.EffectiveDate, r.DateEffective, r.FullApplicationDate)
}

// BillLabel returns the secondary identifier shown next to the title. Records
// without a bill number show their instrument type instead.
func (r Record) BillLabel() string {
	return firstNonEmpty("", r.BillNumber, r.Type)
}

// SummaryText returns the summary or a placeholder.
func (r Record) SummaryText() string {
	return firstNonEmpty(NoSummary, r.Summary)
}

// SourceLink returns the official source URL or a placeholder.
func (r Record) SourceLink() string {
	return firstNonEmpty(NoSource, r.SourceURL)
}

// VerifiedLabel returns the last verification date or a placeholder.
func (r Record) VerifiedLabel() string {
	return firstNonEmpty(UnknownVerification, r.LastVerified)
}

// HasTag reports whether tag is in the record's tag set. Matching is exact.
func (r Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// SearchText returns the lowercased haystack used by free-text search:
// title-or-name, summary, every key provision and every tag, joined by
// single spaces.
func (r Record) SearchText() string {
	parts := make([]string, 0, 2+len(r.KeyProvisions)+len(r.Tags))
	title := r.Title
	if title == "" {
		title = r.Name
	}
	parts = append(parts, title, r.Summary)
	parts = append(parts, r.KeyProvisions...)
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Milestones returns the populated lifecycle dates in a fixed display order.
func (r Record) Milestones() []Milestone {
	candidates := []Milestone{
		{Label: "Issued", Date: r.DateIssued},
		{Label: "Introduced", Date: r.DateIntroduced},
		{Label: "Enacted", Date: r.DateEnacted},
		{Label: "Adopted", Date: r.DateAdopted},
		{Label: "Effective", Date: r.EffectiveDateLabel()},
		{Label: "Vetoed", Date: r.DateVetoed},
		{Label: "Rescinded", Date: r.DateRescinded},
	}
	out := candidates[:0]
	for _, m := range candidates {
		if m.Date == "" || m.Date == NoDate {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Milestone is a labelled lifecycle date.
type Milestone struct {
	Label string
	Date  string
}

func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return fallback
}
