// Package app provides the orchestration layer for legtrack.
//
// # Overview
//
// This package wires together configuration, logging, the dataset and the
// browser. It is the composition root where dependencies are built and
// handed to the UI.
//
// # Startup
//
//  1. Load settings from ~/.config/legtrack/config.toml (defaults if missing)
//  2. Open the JSON log file; the browser owns the terminal
//  3. Load the bundled dataset, or the external file or directory named by
//     data_path or Options.DataPath
//  4. Validate external datasets against the record schema
//  5. Load display preferences (theme, table width)
//  6. Run the browser and block until the user quits or the context ends
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read settings
//	       ├─────> logging.NewFile()    JSON log file
//	       ├─────> LoadCatalog()        Bundled or external records
//	       ├─────> prefs.Load()         Theme and layout
//	       └─────> ui.Run()             Browser (blocks)
//
// The record set is loaded once. Nothing in a session changes it; only the
// filter criteria and the expanded row move.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - config file present but unreadable or invalid
//   - log file cannot be opened
//   - external dataset missing, malformed, or failing validation
//
// Recoverable errors (logged):
//   - preferences cannot be saved after a theme or layout change
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("legtrack failed: %v", err)
//	}
package app
