// Package logtail reads the end of the browser's JSON log file.
//
// Read keeps a ring buffer of the last N lines so large logs are scanned
// once without being held in memory. Parse decodes the zap JSON encoding
// written by the logging package, and Format renders an entry as a single
// human-readable line:
//
//	2026-03-01T10:00:00.000Z DEBUG state updated event=state.Reset visible=28
//
// Lines that are not JSON pass through unchanged.
package logtail
