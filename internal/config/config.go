package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the legtrack settings read from config.toml.
type Config struct {
	// DataPath is an external dataset file or directory. Empty selects the
	// bundled dataset.
	DataPath    string
	SearchDelay time.Duration
	LogFile     string
	LogLevel    string
}

const (
	defaultConfigPath    = "~/.config/legtrack/config.toml"
	defaultLogFile       = "~/.local/state/legtrack/legtrack.log"
	defaultLogLevel      = "info"
	defaultSearchDelayMS = 300
)

var validLevels = []string{"debug", "info", "warn", "error"}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SearchDelay: defaultSearchDelayMS * time.Millisecond,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
	}
}

// Load locates and parses the legtrack config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath      string `toml:"data_path"`
		SearchDelayMS int    `toml:"search_delay_ms"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.DataPath); p != "" {
		cfg.DataPath = mustExpand(p)
	}

	if raw.SearchDelayMS > 0 {
		cfg.SearchDelay = time.Duration(raw.SearchDelayMS) * time.Millisecond
	}

	if p := strings.TrimSpace(raw.LogFile); p != "" {
		cfg.LogFile = mustExpand(p)
	}

	level := strings.ToLower(strings.TrimSpace(raw.LogLevel))
	switch {
	case level == "":
	case isValidLevel(level):
		cfg.LogLevel = level
	default:
		return Config{}, fmt.Errorf("parse config: log_level %q is not one of %s", raw.LogLevel, strings.Join(validLevels, ", "))
	}

	return cfg, nil
}

func isValidLevel(level string) bool {
	for _, l := range validLevels {
		if l == level {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
