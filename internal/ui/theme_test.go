package ui

import (
	"testing"

	"github.com/five82/legtrack/internal/legislation"
)

func TestThemeLookups(t *testing.T) {
	th := GetTheme("Nightfox")

	if got := th.StatusColor("  Enacted "); got != th.StatusColors["enacted"] {
		t.Fatalf("StatusColor = %q, want %q", got, th.StatusColors["enacted"])
	}
	if got := th.StatusColor("unknown"); got != th.Text {
		t.Fatalf("StatusColor unknown = %q, want %q", got, th.Text)
	}
	if got := th.JurisdictionColor(legislation.State); got != th.JurisdictionColors[legislation.State] {
		t.Fatalf("JurisdictionColor = %q", got)
	}
	if got := th.JurisdictionColor("planetary"); got != th.Muted {
		t.Fatalf("JurisdictionColor unknown = %q, want %q", got, th.Muted)
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := NextTheme("missing"); got != names[0] {
		t.Fatalf("NextTheme unknown = %q", got)
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme unknown = %q", got)
	}
}

func TestThemesCoverStatuses(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{"active", "enacted", "adopted", "pending", "vetoed", "rescinded"} {
			if th.StatusColors[status] == "" {
				t.Fatalf("%s has no color for %s", name, status)
			}
		}
		for _, j := range []legislation.JurisdictionType{legislation.Federal, legislation.State, legislation.International} {
			if th.JurisdictionColors[j] == "" {
				t.Fatalf("%s has no color for %s", name, j)
			}
		}
	}
}
