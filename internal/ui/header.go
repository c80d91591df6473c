package ui

import (
	"fmt"
	"strings"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

// renderHeader renders the title line with the result count and dataset
// provenance.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("legtrack", styles.Logo)}

	countStyle := styles.Text
	if m.view.NoResults {
		countStyle = styles.WarningText
	}
	parts = append(parts, bg.Render(fmt.Sprintf("Showing %d of %d", m.view.VisibleCount, m.view.Total), countStyle))

	if m.width >= LayoutCompactWidth {
		source := m.source
		if source == "" || source == legislation.BundledSource {
			source = "bundled dataset"
		}
		parts = append(parts, bg.Render(truncate(source, 40), styles.FaintText))
	}
	if m.lastUpdated != "" {
		parts = append(parts, bg.Render("Updated", styles.MutedText)+bg.Space()+bg.Render(m.lastUpdated, styles.Text))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, bg.Sep(" │ ")))
}

// renderCommandBar renders the key hints line.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.searching {
		commands = []cmd{
			{"enter", "Keep"},
			{"esc", "Clear"},
		}
	} else {
		toggle := "Expand"
		if r, ok := m.selectedRecord(); ok && r.ID == m.view.Expanded {
			toggle = "Collapse"
		}
		commands = []cmd{
			{"/", "Search"},
			{"f", "Jurisdiction"},
			{"s", "Status"},
			{"1-0", "Tags"},
			{"enter", toggle},
			{"r", "Reset"},
			{"j/k", "Navigate"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFilterBar renders the active jurisdiction, status and search.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	c := m.session.Criteria()

	value := func(v string) string {
		if v == catalog.All {
			return bg.Render(catalog.OptionLabel(v), styles.FaintText)
		}
		return bg.Render(catalog.OptionLabel(v), styles.AccentText.Bold(true))
	}

	parts := []string{
		bg.Render("Jurisdiction", styles.MutedText) + bg.Sep(": ") + value(c.Jurisdiction),
		bg.Render("Status", styles.MutedText) + bg.Sep(": ") + value(c.Status),
	}

	search := bg.Render("Search", styles.MutedText) + bg.Sep(": ")
	switch {
	case m.searching:
		search += m.search.View()
	case m.search.Value() != "":
		search += bg.Render(truncate(m.search.Value(), 30), styles.WarningText)
	default:
		search += bg.Render("/ to search", styles.FaintText)
	}
	parts = append(parts, search)

	return bg.FillLine(bg.Sep(" ")+strings.Join(parts, bg.Spaces(3)), m.width)
}

// renderTagBar renders the tag filter options with their number keys.
func (m Model) renderTagBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	active := m.session.Criteria().Tag

	label := bg.Sep(" ") + bg.Render("Tags", styles.MutedText) + bg.Sep(": ")
	if len(m.view.TagOptions) == 0 {
		return bg.FillLine(label+bg.Render("none", styles.FaintText), m.width)
	}

	segments := make([]string, 0, len(m.view.TagOptions))
	for i, opt := range m.view.TagOptions {
		text := fmt.Sprintf("%s (%d)", catalog.FormatTag(opt.Tag), opt.Count)
		style := styles.MutedText
		if opt.Tag == active {
			style = styles.WarningText.Bold(true)
			text = "[" + text + "]"
		}
		segments = append(segments, bg.Render(tagKey(i), styles.AccentText)+bg.Space()+bg.Render(text, style))
	}

	sep := bg.Spaces(2)
	available := m.width - len(" Tags: ") - 4
	shown, dropped := fitSegments(segments, sep, available)
	out := label + strings.Join(shown, sep)
	if dropped > 0 {
		out += sep + bg.Render(fmt.Sprintf("+%d", dropped), styles.FaintText)
	}
	return bg.FillLine(out, m.width)
}

// tagKey returns the number key that toggles the tag option at index i.
// Keys 1-9 pick the first nine options and 0 picks the tenth.
func tagKey(i int) string {
	if i == 9 {
		return "0"
	}
	return fmt.Sprint(i + 1)
}

// tagIndex is the inverse of tagKey. It reports false for keys that are
// not digits.
func tagIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	if k == "0" {
		return 9, true
	}
	return int(k[0] - '1'), true
}
