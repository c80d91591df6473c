package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/report"
)

var (
	dashboardRender bool
	dashboardWidth  int
	dashboardStyle  string
)

// now is swapped in tests.
var now = time.Now

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [file]",
	Short: "Generate the markdown landscape dashboard",
	Long: `Summarizes the dataset as markdown: totals per jurisdiction, status
breakdowns, per-group tables, top tags and upcoming effective dates.

With a file argument the markdown is written there. Otherwise it is printed,
pretty-rendered for the terminal when --render is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardRender, "render", false, "render markdown for the terminal")
	dashboardCmd.Flags().IntVar(&dashboardWidth, "width", 100, "word wrap width for --render")
	dashboardCmd.Flags().StringVar(&dashboardStyle, "style", "", "glamour style for --render (default: auto)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	md := report.Dashboard(cat, now())
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		path := args[0]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create dashboard dir: %w", err)
			}
		}
		if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write dashboard: %w", err)
		}
		logger.Info("dashboard written", zap.String("path", path), zap.Int("bytes", len(md)))
		fmt.Fprintf(out, "Dashboard written to %s\n", path)
		return nil
	}

	if dashboardRender {
		rendered, err := report.RenderMarkdown(md, dashboardWidth, dashboardStyle)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	}
	fmt.Fprint(out, md)
	return nil
}
