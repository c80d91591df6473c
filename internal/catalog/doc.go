// Package catalog implements the filter pipeline over a legislation record
// set: the criteria value, the ANDed predicates behind Visible, and the tag
// frequency table that drives the tag filter options.
//
// # Predicates
//
// A record is visible when it passes all four:
//
//   - Jurisdiction: "all", or an exact jurisdiction type
//   - Status: "all", or a case-insensitive status match. "enacted" also
//     matches "adopted"; the reverse does not hold
//   - Tag: empty, or carried verbatim by the record
//   - Search: empty, or a substring of Record.SearchText
//
// Visible keeps the input order.
//
// # Tag Options
//
// TagFrequency counts tags over the full record set, most used first with
// ties in first-seen order, and keeps the top MaxTagOptions. Filtering by a
// tag outside that list works the same as any other tag.
//
// Everything here is pure. Functions never modify their input slices and
// never fail; criteria that match nothing simply produce an empty result.
package catalog
