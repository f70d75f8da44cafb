package app

import (
	"gridctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath loads config.yaml from a single directory instead of the
	// layered user and project files.
	ConfigPath string

	// NoMouse disables mouse support regardless of the configuration file.
	NoMouse bool

	// Snapshot renders the grid to a PNG instead of starting the TUI.
	Snapshot *SnapshotOptions

	// Grid configuration, populated by NewApplication
	GridctlConfig *config.GridctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides folds command line flags into the loaded configuration.
func (c *Config) applyOverrides(gc *config.GridctlConfig) {
	if c.NoMouse {
		mouse := false
		gc.UI.Mouse = &mouse
	}
	if c.Snapshot != nil {
		if c.Snapshot.Columns > 0 {
			gc.Grid.Columns = c.Snapshot.Columns
		}
		if c.Snapshot.Rows > 0 {
			gc.Grid.Rows = c.Snapshot.Rows
		}
	}
}
