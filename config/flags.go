package config

import (
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"backend":    "render.backend",
	"width":      "window.width",
	"height":     "window.height",
	"fullscreen": "window.fullscreen",
	"vsync":      "window.vsync",
	"fisheye":    "render.fisheye",
	"map":        "assets.map",
	"atlas":      "assets.atlas",
	"fov":        "camera.fov",
	"log-level":  "logging.level",
	"log-file":   "logging.file",
	"minimap":    "hud.minimap",
}

// BindFlags registers the renderer's command-line flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.StringP("config", "c", "", "path to config file")
	fs.String("write-config", "", "write the effective configuration to this path and exit")
	fs.Bool("save-config", false, "write the effective configuration to the user config directory and exit")
	fs.Bool("debug", false, "enable debug logging")

	fs.StringP("backend", "b", d.Render.Backend, "display backend: ebiten, sdl or terminal")
	fs.Int("width", d.Window.Width, "frame width in pixels")
	fs.Int("height", d.Window.Height, "frame height in pixels")
	fs.Bool("fullscreen", d.Window.Fullscreen, "run fullscreen")
	fs.Bool("vsync", d.Window.VSync, "wait for vertical sync")
	fs.String("fisheye", d.Render.Fisheye, "fisheye correction: uniform or per_column")
	fs.StringP("map", "m", d.Assets.Map, "map file (.csv, .png or .bmp)")
	fs.String("atlas", d.Assets.Atlas, "texture sheet (.bmp or .png)")
	fs.Float64("fov", d.Camera.FOV, "field of view in degrees")
	fs.String("log-level", d.Logging.Level, "log level: debug, info, warn or error")
	fs.String("log-file", d.Logging.File, "rotating log file")
	fs.Bool("minimap", d.HUD.Minimap, "show the minimap overlay")
}

// ConfigPath returns the --config value, if any.
func ConfigPath(fs *pflag.FlagSet) string {
	path, _ := fs.GetString("config")
	return path
}

// WriteConfigPath returns the --write-config value, if any.
func WriteConfigPath(fs *pflag.FlagSet) string {
	path, _ := fs.GetString("write-config")
	return path
}

// SaveConfigRequested reports whether --save-config was given.
func SaveConfigRequested(fs *pflag.FlagSet) bool {
	save, _ := fs.GetBool("save-config")
	return save
}
