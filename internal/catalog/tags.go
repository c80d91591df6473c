package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/legtrack/internal/legislation"
)

// MaxTagOptions caps the selectable tag filter options.
const MaxTagOptions = 10

// TagCount is one entry of a tag frequency table.
type TagCount struct {
	Tag   string
	Count int
}

// TagFrequency returns the MaxTagOptions most frequent tags, by descending
// count. Ties keep the order in which tags are first seen.
func TagFrequency(records []legislation.Record) []TagCount {
	all := AllTagFrequency(records)
	if len(all) > MaxTagOptions {
		all = all[:MaxTagOptions]
	}
	return all
}

// AllTagFrequency is TagFrequency without the cap.
func AllTagFrequency(records []legislation.Record) []TagCount {
	var counts []TagCount
	index := make(map[string]int)
	for _, r := range records {
		for _, tag := range r.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}
	slices.SortStableFunc(counts, func(a, b TagCount) int {
		return b.Count - a.Count
	})
	return counts
}

// FormatTag turns a snake_case tag into a display label ("frontier_ai" ->
// "Frontier Ai"). Casers carry state, so each call builds its own.
func FormatTag(tag string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.ReplaceAll(tag, "_", " "))
}
