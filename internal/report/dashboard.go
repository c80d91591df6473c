package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

const (
	dateLayout  = "2006-01-02"
	maxUpcoming = 10
)

// Stats summarizes a record set for the dashboard.
type Stats struct {
	Federal       int
	State         int
	International int
	Total         int

	FederalActive    int
	FederalRescinded int

	StateEnacted int
	StateVetoed  int
	StatePending int

	TopTags []catalog.TagCount
}

// BuildStats counts records by jurisdiction type and status.
func BuildStats(records []legislation.Record) Stats {
	var s Stats
	for _, r := range records {
		switch r.JurisdictionType {
		case legislation.Federal:
			s.Federal++
			switch {
			case statusIs(r, "active"):
				s.FederalActive++
			case statusIs(r, "rescinded"):
				s.FederalRescinded++
			}
		case legislation.State:
			s.State++
			switch {
			case statusIs(r, "enacted"):
				s.StateEnacted++
			case statusIs(r, "vetoed"):
				s.StateVetoed++
			case statusIs(r, "pending"):
				s.StatePending++
			}
		case legislation.International:
			s.International++
		}
	}
	s.Total = s.Federal + s.State + s.International
	s.TopTags = catalog.TagFrequency(records)
	return s
}

// Upcoming is one future effective date.
type Upcoming struct {
	Date         string
	Jurisdiction string
	Title        string
}

// UpcomingDates lists state effective dates and international full
// application dates later than now, earliest first, capped at ten.
func UpcomingDates(records []legislation.Record, now time.Time) []Upcoming {
	today := now.Format(dateLayout)
	var out []Upcoming
	for _, r := range records {
		var date string
		switch r.JurisdictionType {
		case legislation.State:
			date = r.EffectiveDate
		case legislation.International:
			date = r.FullApplicationDate
		}
		if date == "" || date <= today {
			continue
		}
		out = append(out, Upcoming{Date: date, Jurisdiction: r.JurisdictionLabel(), Title: r.DisplayTitle()})
	}
	slices.SortFunc(out, func(a, b Upcoming) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Jurisdiction, b.Jurisdiction); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	if len(out) > maxUpcoming {
		out = out[:maxUpcoming]
	}
	return out
}

// Dashboard renders the markdown landscape summary of a catalog as of now.
func Dashboard(cat *legislation.Catalog, now time.Time) string {
	records := cat.Records()
	stats := BuildStats(records)

	var b strings.Builder
	b.WriteString("# AI Legislation Landscape Dashboard\n")
	fmt.Fprintf(&b, "\n**Last Updated:** %s\n", now.Format(dateLayout))
	if stamp := cat.LastUpdated(); stamp != "" {
		fmt.Fprintf(&b, "\n**Dataset Updated:** %s\n", stamp)
	}
	fmt.Fprintf(&b, "\n**Total Items Tracked:** %d\n", stats.Total)

	b.WriteString("\n## Overview\n\n")
	b.WriteString("| Category | Count |\n")
	b.WriteString("|----------|-------|\n")
	fmt.Fprintf(&b, "| US Federal Actions | %d |\n", stats.Federal)
	fmt.Fprintf(&b, "| US State Bills | %d |\n", stats.State)
	fmt.Fprintf(&b, "| International Frameworks | %d |\n", stats.International)

	b.WriteString("\n## US Federal Actions\n\n")
	fmt.Fprintf(&b, "**Active:** %d | **Rescinded:** %d\n\n", stats.FederalActive, stats.FederalRescinded)
	b.WriteString("| Title | Type | Status | Issuing Body |\n")
	b.WriteString("|-------|------|--------|--------------|\n")
	for _, r := range cat.OfType(legislation.Federal) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			cell(truncate(r.DisplayTitle(), 50)), cell(r.Type), statusCell(r.Status), cell(r.IssuingBody))
	}

	b.WriteString("\n## US State Legislation\n\n")
	fmt.Fprintf(&b, "**Enacted:** %d | **Vetoed:** %d | **Pending:** %d\n\n",
		stats.StateEnacted, stats.StateVetoed, stats.StatePending)
	b.WriteString("| State | Bill | Title | Status | Effective |\n")
	b.WriteString("|-------|------|-------|--------|-----------|\n")
	for _, r := range cat.OfType(legislation.State) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(r.JurisdictionLabel()), cell(r.BillNumber), cell(truncate(r.DisplayTitle(), 35)),
			statusCell(r.Status), cell(r.EffectiveDateLabel()))
	}

	b.WriteString("\n## International Frameworks\n\n")
	b.WriteString("| Jurisdiction | Name | Type | Status |\n")
	b.WriteString("|--------------|------|------|--------|\n")
	for _, r := range cat.OfType(legislation.International) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			cell(r.JurisdictionLabel()), cell(truncate(r.DisplayTitle(), 40)), cell(r.Type), statusCell(r.Status))
	}

	b.WriteString("\n## Key Themes (by tag frequency)\n\n")
	b.WriteString("| Tag | Occurrences |\n")
	b.WriteString("|-----|-------------|\n")
	for _, tc := range stats.TopTags {
		fmt.Fprintf(&b, "| `%s` | %d |\n", tc.Tag, tc.Count)
	}

	b.WriteString("\n## Upcoming Effective Dates\n\n")
	b.WriteString("| Date | Jurisdiction | Item |\n")
	b.WriteString("|------|--------------|------|\n")
	for _, u := range UpcomingDates(records, now) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", u.Date, cell(u.Jurisdiction), cell(truncate(u.Title, 50)))
	}

	b.WriteString("\n---\n")
	b.WriteString("*Generated by legtrack dashboard*\n")
	return b.String()
}

func statusIs(r legislation.Record, status string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), status)
}

func statusCell(status string) string {
	if icon := StatusIcon(status); icon != "" {
		return icon + " " + cell(status)
	}
	return cell(status)
}

// StatusIcon returns the marker shown next to a status, or "".
func StatusIcon(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "enacted", "active", "adopted":
		return "✅"
	case "vetoed", "rescinded":
		return "❌"
	case "pending":
		return "⏳"
	default:
		return ""
	}
}

// cell escapes table separators inside a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
