package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/gridctl"
	projectConfigDir = ".gridctl"
	configFileName   = "config.yaml"
)

// Smallest cell height that still leaves a readable font and a non-zero
// fitting unit.
const minCellHeight = 8

// LoadConfig loads the gridctl configuration by layering default, user, and project settings.
func LoadConfig() (GridctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = layerFile(config, userConfigPath)
		if err != nil {
			return GridctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = layerFile(config, projectConfigPath)
		if err != nil {
			return GridctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return GridctlConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// LoadConfigFromPath loads config.yaml from a single directory on top of the
// defaults, skipping the user and project layers. A missing file is an error.
func LoadConfigFromPath(dir string) (GridctlConfig, error) {
	path := filepath.Join(dir, configFileName)
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return GridctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}

	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return GridctlConfig{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// layerFile merges the file at path over base when it exists.
func layerFile(base GridctlConfig, path string) (GridctlConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return GridctlConfig{}, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a GridctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (GridctlConfig, error) {
	var config GridctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return GridctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return GridctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay keep the base setting.
func mergeConfigs(base, overlay GridctlConfig) GridctlConfig {
	merged := base

	if overlay.Grid.Columns != 0 {
		merged.Grid.Columns = overlay.Grid.Columns
	}
	if overlay.Grid.Rows != 0 {
		merged.Grid.Rows = overlay.Grid.Rows
	}
	if overlay.Grid.CellWidth != 0 {
		merged.Grid.CellWidth = overlay.Grid.CellWidth
	}
	if overlay.Grid.CellHeight != 0 {
		merged.Grid.CellHeight = overlay.Grid.CellHeight
	}
	if overlay.Grid.InitialText != "" {
		merged.Grid.InitialText = overlay.Grid.InitialText
	}

	if overlay.Font.Family != "" {
		merged.Font.Family = overlay.Font.Family
	}

	if overlay.UI.Measure != "" {
		merged.UI.Measure = overlay.UI.Measure
	}
	if overlay.UI.FrameInterval != 0 {
		merged.UI.FrameInterval = overlay.UI.FrameInterval
	}
	if overlay.UI.Mouse != nil {
		merged.UI.Mouse = overlay.UI.Mouse
	}
	if overlay.UI.Zebra != nil {
		merged.UI.Zebra = overlay.UI.Zebra
	}
	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}

	return merged
}

// Validate checks that the configuration describes a usable grid.
func (c GridctlConfig) Validate() error {
	g := c.Grid
	if g.Columns < 1 || g.Rows < 1 {
		return fmt.Errorf("grid must have at least one column and one row, got %dx%d", g.Columns, g.Rows)
	}
	if g.CellHeight < minCellHeight {
		return fmt.Errorf("grid.cellHeight must be at least %d, got %d", minCellHeight, g.CellHeight)
	}
	// One terminal column is half a cell height wide; a cell needs two.
	if g.CellWidth < g.CellHeight {
		return fmt.Errorf("grid.cellWidth (%d) must be at least grid.cellHeight (%d)", g.CellWidth, g.CellHeight)
	}
	switch g.InitialText {
	case InitialTextCoordinates, InitialTextBlank:
	default:
		return fmt.Errorf("unknown grid.initialText %q", g.InitialText)
	}

	if c.Font.Family == "" {
		return errors.New("font.family must not be empty")
	}

	switch c.UI.Measure {
	case MeasureCells, MeasureFont:
	default:
		return fmt.Errorf("unknown ui.measure %q (want %q or %q)", c.UI.Measure, MeasureCells, MeasureFont)
	}
	if c.UI.FrameInterval <= 0 {
		return fmt.Errorf("ui.frameInterval must be positive, got %s", c.UI.FrameInterval)
	}
	switch c.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown ui.theme %q", c.UI.Theme)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
