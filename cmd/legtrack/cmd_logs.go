package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/legtrack/internal/config"
	"github.com/five82/legtrack/internal/logging"
	"github.com/five82/legtrack/internal/logtail"
)

var (
	logsLines int
	logsLevel string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the end of the browser log",
	Long: `Prints the last lines of the log file the browser writes to, one
entry per line. The file is log_file from the config.

Use -n 0 to print the whole file and --level to hide quieter entries.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "debug", "minimum level to show")
}

func runLogs(cmd *cobra.Command, args []string) error {
	lvl, err := logging.ParseLevel(logsLevel)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lines, err := logtail.Read(cfg.LogFile, logsLines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(lines) == 0 {
		fmt.Fprintf(out, "No log entries in %s\n", cfg.LogFile)
		return nil
	}

	entries := make([]logtail.Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, logtail.Parse(line))
	}
	for _, e := range logtail.Filter(entries, lvl) {
		fmt.Fprintln(out, logtail.Format(e))
	}
	return nil
}
