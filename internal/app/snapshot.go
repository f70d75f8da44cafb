package app

import (
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"gridctl/internal/canvas"
	"gridctl/internal/config"
	"gridctl/internal/focus"
	"gridctl/internal/frame"
	"gridctl/internal/grid"
	"gridctl/internal/headless"
	"gridctl/internal/scene"
	"gridctl/pkg/logging"
)

const snapshotSubsystem = "Snapshot"

// Edit replaces the text of one cell.
type Edit struct {
	Cell grid.Coord
	Text string
}

// SnapshotOptions describes a headless render.
type SnapshotOptions struct {
	// Output is the PNG file written by the snapshot command.
	Output string
	// Edits are typed into the grid in order, each in its own focus cycle.
	Edits []Edit
	// Columns and Rows override the configured grid size when positive.
	Columns int
	Rows    int
	// Overlay leaves the last edited cell focused and draws the editor box.
	Overlay bool
}

// Snapshot is the result of a headless render.
type Snapshot struct {
	Image   image.Image
	Cells   *grid.Scene
	Overlay *canvas.OverlayBox
	Commits int
}

// ParseEdit parses "COLUMN,ROW=TEXT". TEXT may be empty and may itself
// contain '='.
func ParseEdit(s string) (Edit, error) {
	addr, text, ok := strings.Cut(s, "=")
	if !ok {
		return Edit{}, fmt.Errorf("edit %q: expected COLUMN,ROW=TEXT", s)
	}
	colStr, rowStr, ok := strings.Cut(addr, ",")
	if !ok {
		return Edit{}, fmt.Errorf("edit %q: expected COLUMN,ROW before '='", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Edit{}, fmt.Errorf("edit %q: invalid column: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Edit{}, fmt.Errorf("edit %q: invalid row: %w", s, err)
	}
	if col < 0 || row < 0 {
		return Edit{}, fmt.Errorf("edit %q: coordinates must not be negative", s)
	}
	return Edit{Cell: grid.Coord{Column: col, Row: row}, Text: text}, nil
}

// RenderSnapshot builds the grid, applies the edits through the focus
// controller exactly as a user typing into the overlay would, and rasterizes
// the result.
func RenderSnapshot(ctx context.Context, cfg config.GridctlConfig, opts SnapshotOptions) (*Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	geom := cfg.Geometry()
	for _, e := range opts.Edits {
		if !geom.Contains(e.Cell) {
			return nil, fmt.Errorf("edit at %s is outside the %dx%d grid", e.Cell, geom.Columns, geom.Rows)
		}
	}

	m, err := canvas.NewFontMeasurer()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare fonts: %w", err)
	}

	stage := scene.NewStage(float64(geom.Width()), float64(geom.Height()))
	cells := grid.NewScene(stage, geom)
	factory := grid.NewFactory(geom, m, cfg.Font.Family)
	rOpts := canvas.DefaultOptions(float64(geom.CellWidth), float64(geom.CellHeight))
	if cfg.UI.Theme == config.ThemeLight {
		rOpts = canvas.LightOptions(float64(geom.CellWidth), float64(geom.CellHeight))
		factory.SetTextColor(canvas.LightTextColor)
	}
	overlay := headless.NewOverlay()
	surface := headless.NewSurface(stage.Bounds())
	frames := frame.NewQueue()

	ctrl := focus.New(cells, factory, overlay, surface, frames)
	cells.Populate(factory, cfg.TextSource())
	ctrl.Start()
	frames.Flush()

	for _, e := range opts.Edits {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("snapshot cancelled: %w", err)
		}
		ctrl.Focus(e.Cell.Column, e.Cell.Row)
		frames.Flush()
		overlay.Type(e.Text)
		logging.Debug(snapshotSubsystem, "Typed %q into %s", e.Text, e.Cell)
	}

	var box *canvas.OverlayBox
	if state, _ := ctrl.State(); opts.Overlay && state == focus.Focused {
		left, top := overlay.Position()
		w, h := overlay.Size()
		box = &canvas.OverlayBox{
			Rect: scene.Rect{X: float64(left), Y: float64(top), Width: float64(w), Height: float64(h)},
			Text: overlay.Value(),
		}
	} else {
		ctrl.BlurAndCommit()
	}

	rOpts.Overlay = box

	return &Snapshot{
		Image:   canvas.Rasterize(stage, m, rOpts),
		Cells:   cells,
		Overlay: box,
		Commits: ctrl.Commits(),
	}, nil
}

// runSnapshotMode renders the configured grid and writes it as PNG.
func runSnapshotMode(ctx context.Context, cfg *Config) error {
	opts := *cfg.Snapshot
	if opts.Output == "" {
		return fmt.Errorf("snapshot output file is required")
	}

	snap, err := RenderSnapshot(ctx, *cfg.GridctlConfig, opts)
	if err != nil {
		logging.Error(snapshotSubsystem, err, "Failed to render snapshot")
		return err
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.Output, err)
	}
	if err := canvas.WritePNG(f, snap.Image); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}

	b := snap.Image.Bounds()
	logging.Info(snapshotSubsystem, "Wrote %dx%d snapshot with %d edit(s) to %s", b.Dx(), b.Dy(), len(opts.Edits), opts.Output)
	return nil
}
