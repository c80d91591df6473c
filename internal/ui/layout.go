package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/legtrack/internal/prefs"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the detail pane is
	// stacked under the table instead of beside it.
	LayoutCompactWidth = 100

	// LayoutStatusWidth is the minimum table width to show the status column.
	LayoutStatusWidth = 60

	// LayoutJurisdictionWidth is the minimum table width to show the
	// jurisdiction column.
	LayoutJurisdictionWidth = 80
)

// chromeHeight is the number of lines above the panes: header, command
// bar, filter bar and tag bar.
const chromeHeight = 4

// tableWidthStep is the percentage moved by one resize key press.
const tableWidthStep = 5

type pane int

const (
	paneTable pane = iota
	paneDetail
)

// paneLayout is the computed geometry of the content area.
type paneLayout struct {
	tableWidth, tableHeight   int
	detailWidth, detailHeight int
	stacked                   bool
	showDetail                bool
}

// layout computes pane sizes for the current window and expansion.
func (m Model) layout() paneLayout {
	height := max(m.height-chromeHeight, 3)
	l := paneLayout{tableWidth: m.width, tableHeight: height}

	if _, ok := m.session.ExpandedRecord(); !ok {
		return l
	}
	l.showDetail = true

	if m.width < LayoutCompactWidth {
		l.stacked = true
		l.tableHeight = max(height*2/5, 3)
		l.detailHeight = height - l.tableHeight
		l.detailWidth = m.width
		return l
	}

	pct := m.prefs.TableWidth
	if pct < prefs.MinTableWidth || pct > prefs.MaxTableWidth {
		pct = prefs.Default().TableWidth
	}
	l.tableWidth = m.width * pct / 100
	l.detailWidth = m.width - l.tableWidth
	l.detailHeight = height
	return l
}

// renderContent renders the table and, when a record is expanded, its
// detail pane.
func (m Model) renderContent() string {
	l := m.layout()
	table := m.renderTitledBox(m.tableTitle(), m.renderTable(l.tableWidth-2, l.tableHeight-2),
		l.tableWidth, l.tableHeight, m.focus == paneTable)
	if !l.showDetail {
		return table
	}
	detail := m.renderTitledBox(m.detailTitle(), m.detail.View(),
		l.detailWidth, l.detailHeight, m.focus == paneDetail)
	if l.stacked {
		return lipgloss.JoinVertical(lipgloss.Left, table, detail)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, table, detail)
}

// renderTitledBox renders a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Sep(" ") + bg.Render(title, titleStyle) + bg.Sep(" ") +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, topBorder)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}
	lines = append(lines, bottomBorder)
	return strings.Join(lines, "\n")
}
