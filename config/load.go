package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WOLF3D_RENDER_BACKEND.
const EnvPrefix = "WOLF3D"

// Load resolves configuration with priority defaults < file < environment <
// flags. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	configPath := ""
	if fs != nil {
		configPath = ConfigPath(fs)
	}
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
		if debug, _ := fs.GetBool("debug"); debug {
			v.Set("logging.level", "debug")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)
	v.SetDefault("window.vsync", d.Window.VSync)

	v.SetDefault("render.backend", d.Render.Backend)
	v.SetDefault("render.wall_scale", d.Render.WallScale)
	v.SetDefault("render.ceiling_color", d.Render.CeilingColor)
	v.SetDefault("render.floor_color", d.Render.FloorColor)
	v.SetDefault("render.fisheye", d.Render.Fisheye)
	v.SetDefault("render.idle_sleep", d.Render.IdleSleep)

	v.SetDefault("camera.x", d.Camera.X)
	v.SetDefault("camera.y", d.Camera.Y)
	v.SetDefault("camera.facing_x", d.Camera.FacingX)
	v.SetDefault("camera.facing_y", d.Camera.FacingY)
	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("camera.radius", d.Camera.Radius)

	v.SetDefault("controls.speed", d.Controls.Speed)
	v.SetDefault("controls.move_step", d.Controls.MoveStep)
	v.SetDefault("controls.turn_step", d.Controls.TurnStep)

	v.SetDefault("assets.map", d.Assets.Map)
	v.SetDefault("assets.atlas", d.Assets.Atlas)
	v.SetDefault("assets.tiles_x", d.Assets.TilesX)
	v.SetDefault("assets.tiles_y", d.Assets.TilesY)
	v.SetDefault("assets.tile_size", d.Assets.TileSize)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("hud.minimap", d.HUD.Minimap)
	v.SetDefault("hud.show_fps", d.HUD.ShowFPS)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Wolf3DClone")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Wolf3DClone")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "wolf3d-clone")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "wolf3d-clone")
	}
}
