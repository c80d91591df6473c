package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/report"
)

var tagsTop bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with their record counts",
	Long: `Lists every tag in the dataset, most used first. Ties keep the order
in which the tags first appear.

With --top only the tag options offered by the browser are shown.`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsTop, "top", false, fmt.Sprintf("show only the top %d tags", catalog.MaxTagOptions))
}

func runTags(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	counts := catalog.AllTagFrequency(cat.Records())
	if tagsTop {
		counts = catalog.TagFrequency(cat.Records())
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "Available tags:\n\n")
	fmt.Fprint(out, report.FormatTags(counts))
	return nil
}
