package app

import (
	"context"

	"gridctl/internal/config"
	"gridctl/internal/tui/controller"
	"gridctl/internal/tui/design"
	"gridctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config) error {
	logging.Info("Bootstrap", "Starting TUI mode...")

	design.Initialize(darkMode(cfg.GridctlConfig.UI.Theme))

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(*cfg.GridctlConfig, cfg.Debug, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Quit when the caller cancels, e.g. on SIGTERM.
	stop := context.AfterFunc(ctx, p.Quit)
	defer stop()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

// darkMode resolves the configured theme, asking the terminal for "auto".
func darkMode(theme config.Theme) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}
