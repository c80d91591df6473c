package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
	"github.com/five82/legtrack/internal/report"
)

var (
	queryJurisdiction string
	queryStatus       string
	queryTag          string
	querySearch       string
	queryIn           string
	queryCount        bool
	queryTable        bool
)

// queryCmd filters the dataset like the browser does and prints the matches.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter legislation and print the matches",
	Long: `Applies the same filters as the browser and prints every match.

Filters are ANDed. --status enacted also matches adopted frameworks.
--in matches a substring of the jurisdiction name, for example
"california" or "european".

Examples:
  legtrack query --tag frontier_ai
  legtrack query --jurisdiction state --status vetoed
  legtrack query --search "kill switch" --count`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryJurisdiction, "jurisdiction", "j", catalog.All, "jurisdiction type: all, federal, state, international")
	queryCmd.Flags().StringVarP(&queryStatus, "status", "s", "", "status (enacted, active, pending, vetoed, rescinded)")
	queryCmd.Flags().StringVarP(&queryTag, "tag", "t", "", "tag")
	queryCmd.Flags().StringVarP(&querySearch, "search", "q", "", "full-text search")
	queryCmd.Flags().StringVar(&queryIn, "in", "", "jurisdiction name contains")
	queryCmd.Flags().BoolVar(&queryCount, "count", false, "print only the number of matches")
	queryCmd.Flags().BoolVar(&queryTable, "table", false, "print a compact table")
}

func runQuery(cmd *cobra.Command, args []string) error {
	jurisdiction := strings.ToLower(strings.TrimSpace(queryJurisdiction))
	if jurisdiction == "" {
		jurisdiction = catalog.All
	}
	if !slices.Contains(catalog.JurisdictionOptions, jurisdiction) {
		return fmt.Errorf("unknown jurisdiction %q (want one of %s)", queryJurisdiction, strings.Join(catalog.JurisdictionOptions, ", "))
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d items from %s\n\n", cat.Len(), cat.Source())

	results := cat.Records()
	narrow := func(label, value string, c catalog.Criteria) {
		if value == "" {
			return
		}
		results = catalog.Visible(results, c)
		fmt.Fprintf(out, "Filtered by %s '%s': %d results\n", label, value, len(results))
	}
	all := catalog.DefaultCriteria()
	narrow("tag", queryTag, all.WithTag(queryTag))
	narrow("status", queryStatus, all.WithStatus(queryStatus))
	if jurisdiction != catalog.All {
		narrow("jurisdiction type", jurisdiction, all.WithJurisdiction(jurisdiction))
	}
	if queryIn != "" {
		results = catalog.InJurisdiction(results, queryIn)
		fmt.Fprintf(out, "Filtered by jurisdiction '%s': %d results\n", queryIn, len(results))
	}
	if querySearch != "" {
		narrow("search", querySearch, all.WithSearch(querySearch))
	}

	logger.Debug("query finished", zap.Int("matches", len(results)))
	writeResults(out, results)
	return nil
}

func writeResults(out io.Writer, results []legislation.Record) {
	switch {
	case queryCount:
		fmt.Fprintf(out, "\nTotal matching items: %d\n", len(results))
	case queryTable:
		if len(results) > 0 {
			fmt.Fprintf(out, "\n%s\n", report.Table(results))
		}
		fmt.Fprintf(out, "\nTotal: %d items\n", len(results))
	default:
		for _, r := range results {
			fmt.Fprintln(out, report.FormatRecord(r))
		}
		fmt.Fprintf(out, "\n%s\nTotal: %d items\n", strings.Repeat("=", 60), len(results))
	}
}
