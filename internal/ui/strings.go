package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fitSegments keeps as many leading segments as fit in width when joined
// by sep, and reports how many were dropped.
func fitSegments(segments []string, sep string, width int) ([]string, int) {
	used := 0
	sepWidth := lipgloss.Width(sep)
	for i, s := range segments {
		w := lipgloss.Width(s)
		if i > 0 {
			w += sepWidth
		}
		if used+w > width {
			return segments[:i], len(segments) - i
		}
		used += w
	}
	return segments, 0
}
