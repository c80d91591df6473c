// Package legislation defines the legislation record model and the read-only
// catalog the rest of legtrack works from.
//
// # Dataset
//
// The bundled dataset is compiled into the binary (data/legislation.json) and
// grouped by jurisdiction type. The flat record set is the concatenation of
// the federal, state and international groups, in that order, and that order
// is the display order everywhere.
//
// External datasets can be loaded with Load. A file may use the grouped layout
// or be a flat list of records, as JSON or YAML. A directory contributes every
// dataset file it contains, concatenated in file name order.
//
// # Display fields
//
// Records in the wild spell the same concept several ways: a title or a name,
// an effective date under one of three keys, a state or a jurisdiction. The
// accessor methods on Record pick the first populated alias and fall back to a
// fixed placeholder, so rendering code never has to.
//
// # Validation
//
// Validate checks records against an embedded JSON Schema and reports
// duplicate ids. It is used by the validate command and at startup for
// external datasets; the bundled dataset is covered by tests.
package legislation
