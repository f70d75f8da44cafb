package cmd

import (
	"fmt"

	"gridctl/internal/app"

	"github.com/spf13/cobra"
)

type snapshotFlags struct {
	output  string
	edits   []string
	columns int
	rows    int
	overlay bool
}

func newSnapshotCmd() *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the grid to a PNG file without a terminal",
		Long: `Builds the grid, applies the given edits exactly as if they were typed into
the cell editor, and writes the result as a PNG image.

Each --set focuses its cell, replaces the whole text and moves on, so labels are
cut to fit the same way they are in the interactive grid.`,
		Example: `  gridctl snapshot -o grid.png --columns 8 --rows 4 --set 1,2=hello --set "0,0=a much longer label"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "PNG file to write (required)")
	cmd.Flags().StringArrayVar(&flags.edits, "set", nil, "Edit a cell, as COLUMN,ROW=TEXT (repeatable)")
	cmd.Flags().IntVar(&flags.columns, "columns", 0, "Override the number of columns")
	cmd.Flags().IntVar(&flags.rows, "rows", 0, "Override the number of rows")
	cmd.Flags().BoolVar(&flags.overlay, "overlay", false, "Keep the last edited cell open in the editor")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSnapshot(cmd *cobra.Command, flags snapshotFlags) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}

	cfg := app.NewConfig(debug, configPath)
	cfg.Snapshot = opts

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run(commandContext(cmd))
}

func (f snapshotFlags) options() (*app.SnapshotOptions, error) {
	if f.columns < 0 || f.rows < 0 {
		return nil, fmt.Errorf("--columns and --rows must not be negative")
	}
	opts := &app.SnapshotOptions{
		Output:  f.output,
		Columns: f.columns,
		Rows:    f.rows,
		Overlay: f.overlay,
	}
	for _, raw := range f.edits {
		e, err := app.ParseEdit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --set: %w", err)
		}
		opts.Edits = append(opts.Edits, e)
	}
	return opts, nil
}
