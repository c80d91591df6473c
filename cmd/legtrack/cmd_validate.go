package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/legtrack/internal/app"
	"github.com/five82/legtrack/internal/legislation"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a dataset against the record schema",
	Long: `Validates every record against the record schema and reports
duplicate ids. The path defaults to --data, then the config data_path,
then the bundled dataset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveDataPath()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		path = args[0]
	}

	cat, err := app.OpenCatalog(commandContext(cmd), path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := legislation.Validate(cat.Records()); err != nil {
		problems := 1
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			problems = len(joined.Unwrap())
		}
		fmt.Fprintln(out, err)
		return fmt.Errorf("%s: %d problems in %d records", cat.Source(), problems, cat.Len())
	}
	fmt.Fprintf(out, "%s: %d records valid\n", cat.Source(), cat.Len())
	return nil
}
