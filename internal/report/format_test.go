package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

func TestFormatRecord(t *testing.T) {
	r := legislation.Record{
		ID:               "state-001",
		Title:            "Colorado AI Act",
		JurisdictionType: legislation.State,
		StateName:        "Colorado",
		Status:           "enacted",
		BillNumber:       "SB 24-205",
		DateEnacted:      "2024-05-17",
		EffectiveDate:    "2026-02-01",
		Summary:          "Duty of care for high-risk systems.",
		KeyProvisions:    []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"},
		Tags:             []string{"comprehensive", "high_risk"},
		SourceURL:        "https://leg.colorado.gov/bills/sb24-205",
	}
	out := FormatRecord(r)

	for _, want := range []string{
		"📋 Colorado AI Act",
		"📍 Jurisdiction: Colorado",
		"📊 Status: ✅ enacted",
		"📁 SB 24-205",
		"📅 Enacted: 2024-05-17",
		"📅 Effective: 2026-02-01",
		"📝 Summary:\n   Duty of care for high-risk systems.",
		"   • p5",
		"   • ... and 2 more",
		"🏷️  Tags: comprehensive, high_risk",
		"🔗 https://leg.colorado.gov/bills/sb24-205",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "p6")
}

func TestFormatRecordMinimal(t *testing.T) {
	out := FormatRecord(legislation.Record{ID: "x", JurisdictionType: legislation.International})
	assert.Contains(t, out, "📋 Untitled")
	assert.Contains(t, out, "📊 Status: unknown")
	assert.NotContains(t, out, "Jurisdiction:")
	assert.NotContains(t, out, "Summary")
	assert.NotContains(t, out, "🔗")
}

func TestTableListsRecords(t *testing.T) {
	records := bundled(t).OfType(legislation.Federal)
	out := Table(records)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// top border, header, separator, rows, bottom border
	require.Len(t, lines, len(records)+4)
	assert.Contains(t, out, "JURISDICTION")
	assert.Contains(t, out, "fed-008")
	assert.Contains(t, out, "US Federal")
}

func TestFormatTags(t *testing.T) {
	out := FormatTags([]catalog.TagCount{{Tag: "safety", Count: 3}, {Tag: "china", Count: 1}})
	assert.Equal(t, "  safety: 3\n  china: 1\n", out)
}

func TestRenderMarkdownPlain(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nSome *text*.", 60, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "✅", StatusIcon("Adopted"))
	assert.Equal(t, "❌", StatusIcon("rescinded"))
	assert.Equal(t, "⏳", StatusIcon("pending"))
	assert.Equal(t, "", StatusIcon("draft"))
}
