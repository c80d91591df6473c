package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

const maxProvisions = 5

var rule = strings.Repeat("=", 60)

// FormatRecord renders one record as the multi-line block printed by the
// query command.
func FormatRecord(r legislation.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "📋 %s\n", r.DisplayTitle())
	b.WriteString(rule + "\n")

	if j := r.JurisdictionLabel(); j != legislation.UnknownJurisdiction {
		fmt.Fprintf(&b, "📍 Jurisdiction: %s\n", j)
	}
	status := r.Status
	if status == "" {
		status = "unknown"
	}
	fmt.Fprintf(&b, "📊 Status: %s\n", strings.TrimSpace(StatusIcon(status)+" "+status))
	if label := r.BillLabel(); label != "" {
		fmt.Fprintf(&b, "📁 %s\n", label)
	}
	for _, m := range r.Milestones() {
		fmt.Fprintf(&b, "📅 %s: %s\n", m.Label, m.Date)
	}

	if r.Summary != "" {
		fmt.Fprintf(&b, "\n📝 Summary:\n   %s\n", r.Summary)
	}

	if len(r.KeyProvisions) > 0 {
		b.WriteString("\n🔑 Key Provisions:\n")
		for i, p := range r.KeyProvisions {
			if i == maxProvisions {
				fmt.Fprintf(&b, "   • ... and %d more\n", len(r.KeyProvisions)-maxProvisions)
				break
			}
			fmt.Fprintf(&b, "   • %s\n", p)
		}
	}

	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "\n🏷️  Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.SourceURL != "" {
		fmt.Fprintf(&b, "\n🔗 %s\n", r.SourceURL)
	}
	return b.String()
}

// Table renders records as a bordered table, one row per record.
func Table(records []legislation.Record) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	body := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "JURISDICTION", "STATUS", "EFFECTIVE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return body
		})
	for _, r := range records {
		t.Row(r.ID, truncate(r.DisplayTitle(), 40), r.JurisdictionLabel(), r.Status, r.EffectiveDateLabel())
	}
	return t.String()
}

// FormatTags renders a tag frequency list, one "tag: count" line each.
func FormatTags(counts []catalog.TagCount) string {
	var b strings.Builder
	for _, tc := range counts {
		fmt.Fprintf(&b, "  %s: %d\n", tc.Tag, tc.Count)
	}
	return b.String()
}
