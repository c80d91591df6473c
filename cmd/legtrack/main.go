package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/app"
	"github.com/five82/legtrack/internal/config"
	"github.com/five82/legtrack/internal/legislation"
	"github.com/five82/legtrack/internal/logging"
)

var (
	configPath string
	prefsPath  string
	dataPath   string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "legtrack",
	Short: "Browse and query AI legislation from the terminal",
	Long: `legtrack tracks AI laws, executive orders and international frameworks.

Run without arguments to open the interactive browser. The subcommands
query, summarize and validate the same dataset without a terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The browser owns the terminal and logs to a file instead.
		if !cmd.HasParent() {
			logger = zap.NewNop()
			return nil
		}
		var err error
		logger, err = logging.NewConsole(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runBrowser,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/legtrack/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/legtrack/prefs.toml)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "dataset file or directory (default: bundled dataset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(logsCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "legtrack: %v\n", err)
		return 1
	}
	return 0
}

func runBrowser(cmd *cobra.Command, args []string) error {
	return app.Run(commandContext(cmd), app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		DataPath:   dataPath,
	})
}

// commandContext returns the command's context, or Background when the
// command was invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveDataPath returns --data when set, otherwise the config data_path.
func resolveDataPath() (string, error) {
	if dataPath != "" {
		return dataPath, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.DataPath, nil
}

// loadCatalog loads and validates the dataset selected by flags and config.
func loadCatalog(cmd *cobra.Command) (*legislation.Catalog, error) {
	path, err := resolveDataPath()
	if err != nil {
		return nil, err
	}
	cat, err := app.LoadCatalog(commandContext(cmd), path)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded",
		zap.String("source", cat.Source()),
		zap.Int("records", cat.Len()),
	)
	return cat, nil
}
