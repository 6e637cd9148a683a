package easyx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easyx.toml")
	data := `
[window]
width = 800
height = 600
dblclks = true

[library]
path = "/opt/easyx/libeasyx.so"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Window.Width != 800 || config.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", config.Window.Width, config.Window.Height)
	}
	if !config.Window.DblClks || config.Window.NoClose {
		t.Errorf("window switches = %+v", config.Window)
	}
	if config.Library.Path != "/opt/easyx/libeasyx.so" {
		t.Errorf("library path = %q", config.Library.Path)
	}
	if config.Log.Level != "debug" {
		t.Errorf("log level = %q", config.Log.Level)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easyx.toml")
	if err := os.WriteFile(path, []byte("[window]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Window.Width != 640 || config.Window.Height != 480 {
		t.Errorf("defaults = %dx%d, want 640x480", config.Window.Width, config.Window.Height)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// Defaults survive the failure so callers can proceed.
	if config.Window.Width != 640 {
		t.Errorf("width = %d, want default 640", config.Window.Width)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easyx.toml")
	in := Config{
		Window:  WindowConfig{Width: 1024, Height: 768, NoMinimize: true},
		Library: LibraryConfig{Path: "lib/easyx.dll"},
	}
	if err := SaveConfig(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip changed config:\n in  %+v\n out %+v", in, out)
	}
}

func TestWindowConfigFlags(t *testing.T) {
	cases := []struct {
		name   string
		config WindowConfig
		want   InitFlag
	}{
		{"none", WindowConfig{}, 0},
		{"console", WindowConfig{ShowConsole: true}, ShowConsole},
		{"all", WindowConfig{ShowConsole: true, NoClose: true, NoMinimize: true, DblClks: true},
			ShowConsole | NoClose | NoMinimize | DblClks},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.config.Flags(); got != tc.want {
				t.Errorf("Flags() = %#x, want %#x", got, tc.want)
			}
		})
	}
}
