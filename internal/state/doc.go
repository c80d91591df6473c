// Package state holds the browsing session of the legislation catalog as an
// explicit value.
//
// # Overview
//
// A State bundles the immutable record set with the session-local pieces that
// change under user interaction: the filter criteria and the id of the one
// expanded record, if any. The visible subset and the tag options are derived
// from those and cached on the value.
//
// # Transitions
//
// State never changes in place. Every user action is an Event, and Apply
// returns the next State:
//
//	s := state.New(records)
//	s = state.Apply(s, state.SelectStatus{Status: "enacted"})
//	s = state.Apply(s, state.ToggleRow{ID: "state-001"})
//	out := s.Output()
//
// Two rules hold across all events:
//
//   - Any event that touches the criteria clears the expansion, even when the
//     expanded record is still visible afterwards.
//   - ToggleRow only touches the expansion.
//
// Reset restores the default criteria and clears the expansion, which shows
// the full record set in its original order.
//
// # Output
//
// Output returns everything a renderer needs: the visible records, the
// visible and total counts, the no-results flag, the tag options and the
// expanded id. Slices in the output are copies.
package state
