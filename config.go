package easyx

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config configures the window and host-library location, typically
// loaded from easyx.toml next to the program.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
}

// WindowConfig selects the initial window geometry and behavior.
type WindowConfig struct {
	Width       int32 `toml:"width"`
	Height      int32 `toml:"height"`
	ShowConsole bool  `toml:"show_console"`
	NoClose     bool  `toml:"no_close"`
	NoMinimize  bool  `toml:"no_minimize"`
	DblClks     bool  `toml:"dblclks"`
}

// LibraryConfig overrides where the host library is loaded from.
type LibraryConfig struct {
	Path string `toml:"path"`
}

// LogConfig selects the diagnostic log level (debug, info, warn,
// error).
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns sensible defaults for a new window.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
		},
	}
}

// Flags packs the window behavior switches into the creation flags.
func (w WindowConfig) Flags() InitFlag {
	var f InitFlag
	if w.ShowConsole {
		f |= ShowConsole
	}
	if w.NoClose {
		f |= NoClose
	}
	if w.NoMinimize {
		f |= NoMinimize
	}
	if w.DblClks {
		f |= DblClks
	}
	return f
}

// LoadConfig reads a Config from a TOML file. Missing values keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if config.Window.Width <= 0 {
		config.Window.Width = 640
	}
	if config.Window.Height <= 0 {
		config.Window.Height = 480
	}
	return config, nil
}

// SaveConfig writes a Config as TOML.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
