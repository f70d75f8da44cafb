package cmd

import (
	"context"
	"fmt"

	"gridctl/internal/app"

	"github.com/spf13/cobra"
)

// debug enables verbose logging across the application.
var debug bool

// configPath points at a directory holding config.yaml.
var configPath string

// noMouse starts the grid without mouse reporting, leaving the terminal's own
// selection usable.
var noMouse bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive grid",
		Long: `Opens the grid in the terminal's alternate screen.

Keys while editing:
  Tab / Shift+Tab     next / previous cell, row by row, wrapping around
  Arrow keys          neighbouring cell, wrapping at the edges
  Esc                 stop editing and keep the text

Keys while not editing:
  Enter / Tab         edit the last cell again
  h j k l / arrows    scroll
  L                   show or hide the activity log
  q / Ctrl+C          quit

Configuration:
  gridctl loads ~/.config/gridctl/config.yaml and then .gridctl/config.yaml in
  the current directory. Use --config-path to load a single directory instead.`,
		Args: cobra.NoArgs,
		RunE: runGrid,
	}
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	return cmd
}

// runGrid is the entry point for the interactive grid
func runGrid(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(debug, configPath)
	cfg.NoMouse = noMouse

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run(commandContext(cmd))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
