package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
)

// maxDetailProvisions caps the provisions listed before the remainder is
// summarized.
const maxDetailProvisions = 8

// detailTitle returns the title for the detail box.
func (m Model) detailTitle() string {
	if r, ok := m.session.ExpandedRecord(); ok && r.BillLabel() != "" {
		return "Details " + r.BillLabel()
	}
	return "Details"
}

// updateDetailViewport resizes the detail viewport to the current layout and
// refreshes its content. The scroll position resets when the expanded
// record changes.
func (m *Model) updateDetailViewport() {
	l := m.layout()
	if !l.showDetail {
		m.detailFor = ""
		if m.focus == paneDetail {
			m.focus = paneTable
		}
		return
	}
	m.detail.Width = max(l.detailWidth-2, 1)
	m.detail.Height = max(l.detailHeight-2, 1)

	r, _ := m.session.ExpandedRecord()
	bgColor := m.theme.SurfaceAlt
	if m.focus == paneDetail {
		bgColor = m.theme.FocusBg
	}
	m.detail.Style = lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	m.detail.SetContent(m.renderDetailContent(r, m.detail.Width, bgColor))
	if r.ID != m.detailFor {
		m.detail.GotoTop()
		m.detailFor = r.ID
	}
}

// renderDetailContent renders the fields of an expanded record.
func (m Model) renderDetailContent(r legislation.Record, width int, bgColor string) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	textWidth := max(width-1, 10)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}
	wrapped := func(text string, style lipgloss.Style, indent string) {
		for _, l := range strings.Split(ansi.Wrap(text, textWidth-len(indent), ""), "\n") {
			line(bg.Sep(indent) + bg.Render(l, style))
		}
	}
	field := func(label, value string, valueStyle lipgloss.Style) {
		line(bg.Render(padRight(label, 12), styles.MutedText) + bg.Render(value, valueStyle))
	}
	section := func(title string) {
		line("")
		line(bg.Render(title, styles.MutedText.Bold(true)))
	}

	wrapped(r.DisplayTitle(), styles.AccentText.Bold(true), "")
	line("")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(r.Status))).Bold(true)
	jurisdictionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.JurisdictionColor(r.JurisdictionType)))

	field("Jurisdiction", r.JurisdictionLabel(), jurisdictionStyle)
	if r.Type != "" {
		field("Type", catalog.OptionLabel(r.Type), styles.Text)
	}
	field("Status", catalog.OptionLabel(r.Status), statusStyle)
	if bill := r.BillLabel(); bill != "" {
		field("Bill", bill, styles.Text)
	}
	field("Effective", r.EffectiveDateLabel(), styles.Text)

	if milestones := r.Milestones(); len(milestones) > 0 {
		section("Timeline")
		for _, ms := range milestones {
			line(bg.Sep("  ") + bg.Render(padRight(ms.Label, 11), styles.FaintText) + bg.Render(ms.Date, styles.Text))
		}
	}

	section("Summary")
	wrapped(r.SummaryText(), styles.Text, "")

	if len(r.KeyProvisions) > 0 {
		section("Key Provisions")
		shown := r.KeyProvisions
		if len(shown) > maxDetailProvisions {
			shown = shown[:maxDetailProvisions]
		}
		for _, p := range shown {
			lines := strings.Split(ansi.Wrap(p, textWidth-4, ""), "\n")
			for i, l := range lines {
				prefix := "    "
				if i == 0 {
					prefix = "  • "
				}
				line(bg.Render(prefix, styles.AccentText) + bg.Render(l, styles.Text))
			}
		}
		if extra := len(r.KeyProvisions) - len(shown); extra > 0 {
			line(bg.Render(fmt.Sprintf("  ... and %d more", extra), styles.FaintText))
		}
	}

	if r.VetoReason != "" {
		section("Veto Reason")
		wrapped(r.VetoReason, styles.DangerText, "")
	}

	if len(r.Tags) > 0 {
		section("Tags")
		active := m.session.Criteria().Tag
		chips := make([]string, 0, len(r.Tags))
		for _, tag := range r.Tags {
			style := styles.InfoText
			if tag == active {
				style = styles.WarningText.Bold(true)
			}
			chips = append(chips, bg.Render("#"+tag, style))
		}
		line(bg.Sep("  ") + strings.Join(chips, bg.Spaces(2)))
	}

	section("Source")
	wrapped(r.SourceLink(), styles.InfoText.Underline(true), "  ")
	line(bg.Sep("  ") + bg.Render("Last verified "+r.VerifiedLabel(), styles.FaintText))

	return strings.TrimSuffix(b.String(), "\n")
}
