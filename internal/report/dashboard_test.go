package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/legtrack/internal/legislation"
)

var newYear = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func bundled(t *testing.T) *legislation.Catalog {
	t.Helper()
	cat, err := legislation.Bundled()
	require.NoError(t, err)
	return cat
}

func TestBuildStatsBundled(t *testing.T) {
	s := BuildStats(bundled(t).Records())

	assert.Equal(t, 8, s.Federal)
	assert.Equal(t, 10, s.State)
	assert.Equal(t, 10, s.International)
	assert.Equal(t, 28, s.Total)
	assert.Equal(t, 7, s.FederalActive)
	assert.Equal(t, 1, s.FederalRescinded)
	assert.Equal(t, 9, s.StateEnacted)
	assert.Equal(t, 1, s.StateVetoed)
	assert.Equal(t, 0, s.StatePending)
	assert.Len(t, s.TopTags, 10)
	assert.Equal(t, "frontier_ai", s.TopTags[0].Tag)
}

func TestUpcomingDatesStrictlyAfterToday(t *testing.T) {
	got := UpcomingDates(bundled(t).Records(), newYear)
	want := []Upcoming{
		{Date: "2026-01-01", Jurisdiction: "California", Title: "AI Training Data Transparency"},
		{Date: "2026-02-01", Jurisdiction: "Colorado", Title: "Consumer Protections for Artificial Intelligence"},
		{Date: "2026-08-01", Jurisdiction: "European Union", Title: "EU AI Act"},
	}
	assert.Equal(t, want, got)
}

func TestUpcomingDatesCapped(t *testing.T) {
	var records []legislation.Record
	for day := 28; day >= 1; day-- {
		records = append(records, legislation.Record{
			ID:               "s",
			Title:            "Bill",
			JurisdictionType: legislation.State,
			StateName:        "Ohio",
			EffectiveDate:    time.Date(2030, 1, day, 0, 0, 0, 0, time.UTC).Format(dateLayout),
		})
	}
	got := UpcomingDates(records, newYear)
	require.Len(t, got, maxUpcoming)
	assert.Equal(t, "2030-01-01", got[0].Date)
	assert.Equal(t, "2030-01-10", got[9].Date)
}

func TestDashboardSections(t *testing.T) {
	md := Dashboard(bundled(t), newYear)

	for _, want := range []string{
		"# AI Legislation Landscape Dashboard",
		"**Last Updated:** 2025-01-01",
		"**Dataset Updated:** 2024-12-24",
		"**Total Items Tracked:** 28",
		"| US Federal Actions | 8 |",
		"**Active:** 7 | **Rescinded:** 1",
		"**Enacted:** 9 | **Vetoed:** 1 | **Pending:** 0",
		"| White House |",
		"| Colorado | SB 24-205 |",
		"| European Union | EU AI Act | regulation | ✅ enacted |",
		"| `frontier_ai` | 4 |",
		"| 2026-08-01 | European Union | EU AI Act |",
	} {
		assert.Contains(t, md, want)
	}

	_, upcoming, found := strings.Cut(md, "## Upcoming Effective Dates")
	require.True(t, found)
	assert.NotContains(t, upcoming, "| 2025-01-01 |")
	for _, u := range UpcomingDates(bundled(t).Records(), newYear) {
		assert.Greater(t, u.Date, "2025-01-01", u.Title)
	}
}

func TestDashboardTruncatesLongTitles(t *testing.T) {
	md := Dashboard(bundled(t), newYear)
	assert.Contains(t, md, "| Executive Order 14110 on Safe, Secure, and Trustwo... |")
}

func TestCellEscapesPipes(t *testing.T) {
	assert.Equal(t, `a \| b`, cell(" a | b "))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "héllo", truncate("héllo", 5))
}

func TestDashboardEmptyCatalog(t *testing.T) {
	md := Dashboard(legislation.NewCatalog(nil, "", "test"), newYear)
	assert.Contains(t, md, "**Total Items Tracked:** 0")
	assert.NotContains(t, md, "Dataset Updated")
	assert.True(t, strings.HasSuffix(md, "*Generated by legtrack dashboard*\n"))
}
