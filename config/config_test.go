package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/e6quisitory/wolf3d-clone/engine"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("wolf3d", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Render.WallScale != 830 {
		t.Errorf("expected wall scale 830, got %v", cfg.Render.WallScale)
	}
	if cfg.Render.CeilingColor != 0xFF323232 || cfg.Render.FloorColor != 0xFF606060 {
		t.Errorf("unexpected band colors %#x / %#x", cfg.Render.CeilingColor, cfg.Render.FloorColor)
	}
	if cfg.Render.IdleSleep != 60*time.Millisecond {
		t.Errorf("expected idle sleep 60ms, got %v", cfg.Render.IdleSleep)
	}
	if cfg.Camera.X != 5.1 || cfg.Camera.Y != 5.1 || cfg.Camera.FOV != 72 {
		t.Errorf("unexpected camera spawn %+v", cfg.Camera)
	}
	if cfg.Controls.Speed != 0.15 || cfg.Controls.MoveStep != 0.3 {
		t.Errorf("unexpected controls %+v", cfg.Controls)
	}
	if cfg.Assets.TilesX != 6 || cfg.Assets.TilesY != 19 || cfg.Assets.TileSize != 64 {
		t.Errorf("unexpected tile grid %+v", cfg.Assets)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
  height: 600
render:
  backend: sdl
  floor_color: 0xFF101010
  idle_sleep: 20ms
camera:
  fov: 60
logging:
  level: warn
`)
	t.Setenv("WOLF3D_CAMERA_FOV", "90")
	t.Setenv("WOLF3D_WINDOW_HEIGHT", "500")

	cfg, err := Load(newFlags(t, "--config", path, "--width", "640", "--fisheye", "per_column"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// flag beats file
	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640 from flag, got %d", cfg.Window.Width)
	}
	// env beats file
	if cfg.Window.Height != 500 {
		t.Errorf("expected height 500 from env, got %d", cfg.Window.Height)
	}
	if cfg.Camera.FOV != 90 {
		t.Errorf("expected fov 90 from env, got %v", cfg.Camera.FOV)
	}
	// file beats defaults
	if cfg.Render.Backend != BackendSDL {
		t.Errorf("expected backend sdl from file, got %s", cfg.Render.Backend)
	}
	if cfg.Render.FloorColor != 0xFF101010 {
		t.Errorf("expected floor color from file, got %#x", cfg.Render.FloorColor)
	}
	if cfg.Render.IdleSleep != 20*time.Millisecond {
		t.Errorf("expected idle sleep 20ms, got %v", cfg.Render.IdleSleep)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
	// untouched defaults survive
	if cfg.Render.CeilingColor != engine.DefaultCeilingColor {
		t.Errorf("expected default ceiling color, got %#x", cfg.Render.CeilingColor)
	}
	if cfg.Render.Fisheye != "per_column" {
		t.Errorf("expected fisheye per_column from flag, got %s", cfg.Render.Fisheye)
	}
}

func TestLoadDebugFlag(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: error\n")
	cfg, err := Load(newFlags(t, "--config", path, "--debug"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		want    string
	}{
		{"backend", "render:\n  backend: vulkan\n", nil, "render.backend"},
		{"fisheye", "", []string{"--fisheye", "barrel"}, "render.fisheye"},
		{"fov", "camera:\n  fov: 190\n", nil, "camera.fov"},
		{"size", "window:\n  width: 0\n", nil, "window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			args := append([]string{"--config", path}, tt.args...)
			_, err := Load(newFlags(t, args...))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveTo(t *testing.T) {
	cfg := Default()
	cfg.Render.Backend = BackendTerminal
	cfg.Render.IdleSleep = 15 * time.Millisecond
	cfg.Assets.Map = "maps/e1m1.csv"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := Load(newFlags(t, "--config", path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Render.Backend != BackendTerminal || loaded.Render.IdleSleep != 15*time.Millisecond {
		t.Errorf("render section not preserved: %+v", loaded.Render)
	}
	if loaded.Assets.Map != "maps/e1m1.csv" {
		t.Errorf("expected map path preserved, got %q", loaded.Assets.Map)
	}
}

func TestSaveToConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir follows XDG_CONFIG_HOME only on unix")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	fs := newFlags(t, "--save-config", "--fov", "80")
	if !SaveConfigRequested(fs) {
		t.Fatal("SaveConfigRequested() = false")
	}
	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// the saved file is picked up without --config
	loaded, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Camera.FOV != 80 {
		t.Errorf("expected fov 80 from saved config, got %v", loaded.Camera.FOV)
	}
}

func TestProjectorOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.WallScale = 500
	cfg.Render.FloorColor = 0xFF000001
	cfg.Render.Fisheye = "per_column"

	opts, err := cfg.ProjectorOptions()
	if err != nil {
		t.Fatalf("ProjectorOptions() error = %v", err)
	}
	want := engine.ProjectorOptions{
		WallScale:    500,
		CeilingColor: engine.DefaultCeilingColor,
		FloorColor:   0xFF000001,
		Fisheye:      engine.FisheyePerColumn,
	}
	if opts != want {
		t.Errorf("ProjectorOptions() = %+v, want %+v", opts, want)
	}
}
