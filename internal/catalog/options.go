package catalog

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/legtrack/internal/legislation"
)

// JurisdictionOptions are the selectable jurisdiction filter values.
var JurisdictionOptions = []string{
	All,
	string(legislation.Federal),
	string(legislation.State),
	string(legislation.International),
}

// StatusOptions are the selectable status filter values. "adopted" is not
// offered because "enacted" already covers it.
var StatusOptions = []string{All, "enacted", "active", "pending", "vetoed", "rescinded"}

// OptionLabel returns the display label of a jurisdiction or status option.
func OptionLabel(value string) string {
	if value == "" {
		return ""
	}
	return cases.Title(language.English).String(value)
}

// Cycle returns the option after (or, with step -1, before) current,
// wrapping around. Unknown values start from the first option.
func Cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+step)%n+n)%n]
}
