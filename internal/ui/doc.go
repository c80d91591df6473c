// Package ui provides the Bubble Tea terminal browser for legtrack.
//
// # Architecture Overview
//
// The Model owns a state.State and turns key presses into state events
// applied with state.Apply. Rendering reads only the state's Output, so
// every frame reflects exactly the active criteria and expansion. The
// browser is read-only: the record set never changes during a session.
//
// # Package Structure
//
//   - app.go: Model, Update and View, key routing, and Run
//   - keys.go: the key map shared by key routing and the help overlay
//   - search.go: the search input and its debounce
//   - layout.go: pane sizing and titled boxes
//   - table.go: the record table, selection and scrolling
//   - detail.go: the scrollable detail pane for the expanded record
//   - header.go: header, command bar, filter bar and tag bar
//   - help.go: the help overlay
//   - theme.go, style_helpers.go, strings.go: palettes and rendering helpers
//
// # Screen Layout
//
// Four chrome lines sit above the content:
//
//  1. Header: logo, "Showing X of Y", dataset source and update stamp
//  2. Command bar: key hints for the current mode and the active theme
//  3. Filter bar: jurisdiction, status and search text
//  4. Tag bar: the tag options with their number keys and counts
//
// With nothing expanded the record table fills the content area. Expanding
// a record opens the detail pane:
//
//   - Split: at LayoutCompactWidth columns or wider the panes sit side by
//     side, the table taking the persisted TableWidth percentage. < and >
//     adjust it in steps of five.
//   - Stacked: on narrower terminals the table takes two fifths of the
//     height and the detail pane the rest.
//
// The table drops its status column below LayoutStatusWidth and its
// jurisdiction column below LayoutJurisdictionWidth.
//
// # Key Map
//
// Filters:
//
//   - f / F: next / previous jurisdiction
//   - s / S: next / previous status
//   - 1-9, 0: toggle a tag option (0 is the tenth); the active tag clears
//   - t: step through the tag options, ending on no tag
//   - /: search
//   - r: reset every filter and collapse
//
// Records:
//
//   - enter / space: expand or collapse the selected record
//   - j, k, g, G, ctrl+u, ctrl+d: move the selection
//   - tab: move focus between table and detail (the detail pane scrolls)
//
// General: T cycles the theme, h or ? shows help, q quits.
//
// Theme and table width are saved to prefs. Filters are never saved.
//
// # Search Debounce
//
// Typing in the search box does not filter immediately. Each keystroke
// bumps a sequence number and schedules a searchSettledMsg with tea.Tick.
// When the message arrives it is applied only if its sequence is still the
// latest, so a burst of typing produces one recomputation after the delay.
//
//   - enter: leave the box keeping the text, applied at once
//   - esc: leave the box and clear the search at once
//   - a delay of zero or less applies on every keystroke
//
// Every criteria change collapses the expanded record. The cursor stays on
// the same record when it is still visible.
//
// # Logging
//
// The browser owns the terminal, so the zap logger passed in Options
// writes to a file. State transitions are logged at debug level.
//
// # Usage Example
//
//	cat, _ := legislation.Bundled()
//	err := ui.Run(ctx, ui.Options{
//		Catalog:     cat,
//		Logger:      logger,
//		PrefsPath:   prefs.DefaultPath(),
//		SearchDelay: ui.DefaultSearchDelay,
//	})
package ui
