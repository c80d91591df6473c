package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/legtrack/internal/legislation"
)

const (
	markerWidth       = 2
	jurisdictionWidth = 18
	statusWidth       = 10
)

// tableTitle returns the title for the record table box.
func (m Model) tableTitle() string {
	out := m.view
	if out.VisibleCount == out.Total {
		return fmt.Sprintf("Legislation (%d)", out.Total)
	}
	return fmt.Sprintf("Legislation (%d of %d)", out.VisibleCount, out.Total)
}

// renderTable renders the visible records as rows sized to width x height.
func (m Model) renderTable(width, height int) string {
	focused := m.focus == paneTable
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	records := m.view.Visible
	if len(records) == 0 {
		lines := []string{
			"",
			bg.Render("No legislation matches the current filters.", styles.MutedText),
			bg.Render("Press r to reset.", styles.FaintText),
		}
		return strings.Join(lines, "\n")
	}

	showJurisdiction := width >= LayoutJurisdictionWidth
	showStatus := width >= LayoutStatusWidth
	titleWidth := width - markerWidth - 1
	if showJurisdiction {
		titleWidth -= jurisdictionWidth + 1
	}
	if showStatus {
		titleWidth -= statusWidth
	}
	titleWidth = max(titleWidth, 8)

	start, end := scrollWindow(m.selectedRow, len(records), height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := records[i]
		if i == m.selectedRow && focused {
			rows = append(rows, m.renderSelectedRow(r, width, titleWidth, showJurisdiction, showStatus))
			continue
		}

		marker := "▸ "
		if r.ID == m.view.Expanded {
			marker = "▾ "
		}
		titleStyle := styles.Text
		if i == m.selectedRow {
			titleStyle = styles.AccentText
		}

		var b strings.Builder
		b.WriteString(bg.Render(marker, styles.FaintText))
		b.WriteString(bg.Render(padRight(truncate(r.DisplayTitle(), titleWidth), titleWidth), titleStyle))
		b.WriteString(bg.Space())
		if showJurisdiction {
			jstyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.JurisdictionColor(r.JurisdictionType)))
			b.WriteString(bg.Render(padRight(truncate(r.JurisdictionLabel(), jurisdictionWidth), jurisdictionWidth), jstyle))
			b.WriteString(bg.Space())
		}
		if showStatus {
			sstyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(r.Status)))
			b.WriteString(bg.Render(truncate(r.Status, statusWidth), sstyle))
		}
		row := b.String()
		rows = append(rows, bg.FillLine(row, width))
	}
	return strings.Join(rows, "\n")
}

// renderSelectedRow renders the highlighted row in selection colors.
func (m Model) renderSelectedRow(r legislation.Record, width, titleWidth int, showJurisdiction, showStatus bool) string {
	marker := "▸ "
	if r.ID == m.view.Expanded {
		marker = "▾ "
	}
	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(padRight(truncate(r.DisplayTitle(), titleWidth), titleWidth))
	b.WriteString(" ")
	if showJurisdiction {
		b.WriteString(padRight(truncate(r.JurisdictionLabel(), jurisdictionWidth), jurisdictionWidth))
		b.WriteString(" ")
	}
	if showStatus {
		b.WriteString(truncate(r.Status, statusWidth))
	}
	return m.theme.Styles().Selected.Bold(true).Width(width).Render(padRight(b.String(), width))
}

// scrollWindow returns the [start, end) range of rows to draw so that
// selected stays on screen.
func scrollWindow(selected, total, height int) (int, int) {
	if height <= 0 || total == 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, total)
	return start, end
}

// selectedRecord returns the record under the cursor.
func (m Model) selectedRecord() (legislation.Record, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.view.Visible) {
		return legislation.Record{}, false
	}
	return m.view.Visible[m.selectedRow], true
}

// keepSelection moves the cursor to the row holding id, or clamps it into
// range when that record is no longer visible.
func (m *Model) keepSelection(id string) {
	if id != "" {
		for i, r := range m.view.Visible {
			if r.ID == id {
				m.selectedRow = i
				return
			}
		}
	}
	if m.selectedRow >= len(m.view.Visible) {
		m.selectedRow = len(m.view.Visible) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// moveSelection moves the cursor by delta rows, clamped to the table.
func (m *Model) moveSelection(delta int) {
	n := len(m.view.Visible)
	if n == 0 {
		m.selectedRow = 0
		return
	}
	m.selectedRow = max(0, min(n-1, m.selectedRow+delta))
}
