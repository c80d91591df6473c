// Package report renders the legislation catalog for the non-interactive
// commands: the markdown landscape dashboard, the per-record text block
// printed by query, and compact result tables.
//
// Dashboard builds the whole document for a given day. Its upcoming dates
// section lists state effective dates and international full-application
// dates strictly after that day, earliest first, at most ten. Titles in
// tables are cut to fit and pipes are escaped.
//
// RenderMarkdown pretty-prints the dashboard with glamour for the terminal.
package report
