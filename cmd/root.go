package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves like 'gridctl run'.
var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "An editable grid of cells in your terminal",
	Long: `gridctl shows a grid of text cells, 100 columns by 100 rows by default,
and lets you edit any of them in place. Tab, Shift+Tab and the arrow keys move
the editor between cells, wrapping at the grid edges; clicking a cell edits it.

Labels longer than a cell are cut to fit while the full text is kept, so
editing the cell again shows everything that was typed.`,
	Args: cobra.NoArgs,
	RunE: runGrid,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gridctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Load config.yaml from this directory instead of the user and project locations")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
}
