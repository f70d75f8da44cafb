package app

import (
	"context"
	"fmt"
	"os"

	"gridctl/internal/config"
	"gridctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs gridctl
type Application struct {
	config *Config
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	var gridCfg config.GridctlConfig
	var err error

	if cfg.ConfigPath != "" {
		gridCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load gridctl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load gridctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		gridCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load gridctl configuration")
			return nil, fmt.Errorf("failed to load gridctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.applyOverrides(&gridCfg)
	if err := gridCfg.Validate(); err != nil {
		logging.Error("Bootstrap", err, "Command line overrides produced an invalid configuration")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.GridctlConfig = &gridCfg

	return &Application{config: cfg}, nil
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.Snapshot != nil {
		return runSnapshotMode(ctx, a.config)
	}
	return runTUIMode(ctx, a.config)
}
