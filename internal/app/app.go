package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/config"
	"github.com/five82/legtrack/internal/legislation"
	"github.com/five82/legtrack/internal/logging"
	"github.com/five82/legtrack/internal/prefs"
	"github.com/five82/legtrack/internal/ui"
)

// Options configure the legtrack browser.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/legtrack/prefs.toml
	DataPath   string // overrides config data_path; empty uses the config value
}

// Run loads the dataset and runs the browser until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	dataPath := cfg.DataPath
	if opts.DataPath != "" {
		dataPath = opts.DataPath
	}
	cat, err := LoadCatalog(ctx, dataPath)
	if err != nil {
		logger.Error("load dataset failed", zap.String("path", dataPath), zap.Error(err))
		return err
	}
	logger.Info("dataset loaded",
		zap.String("source", cat.Source()),
		zap.Int("records", cat.Len()),
		zap.String("last_updated", cat.LastUpdated()),
	)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("load preferences failed", zap.String("path", prefsPath), zap.Error(err))
	}

	err = ui.Run(ctx, ui.Options{
		Catalog:     cat,
		Logger:      logger,
		Prefs:       userPrefs,
		PrefsPath:   prefsPath,
		SearchDelay: cfg.SearchDelay,
	})
	if err != nil {
		logger.Error("browser exited with error", zap.Error(err))
		return fmt.Errorf("run browser: %w", err)
	}
	logger.Info("browser closed")
	return nil
}

// LoadCatalog returns the bundled dataset when path is empty, otherwise the
// external dataset at path. External records must pass validation.
func LoadCatalog(ctx context.Context, path string) (*legislation.Catalog, error) {
	cat, err := OpenCatalog(ctx, path)
	if err != nil {
		return nil, err
	}
	if cat.Source() == legislation.BundledSource {
		return cat, nil
	}
	if err := legislation.Validate(cat.Records()); err != nil {
		return nil, fmt.Errorf("validate dataset %s: %w", cat.Source(), err)
	}
	return cat, nil
}

// OpenCatalog decodes the dataset at path, or the bundled one when path is
// empty, without validating it.
func OpenCatalog(ctx context.Context, path string) (*legislation.Catalog, error) {
	if path == "" {
		cat, err := legislation.Bundled()
		if err != nil {
			return nil, fmt.Errorf("load bundled dataset: %w", err)
		}
		return cat, nil
	}

	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset path: %w", err)
	}
	cat, err := legislation.Load(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", resolved, err)
	}
	return cat, nil
}
