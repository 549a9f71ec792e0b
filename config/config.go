// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/jinzhu/copier"

	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/model"
)

// Backends accepted by render.backend.
const (
	BackendEbiten   = "ebiten"
	BackendSDL      = "sdl"
	BackendTerminal = "terminal"
)

type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	Camera   CameraConfig   `mapstructure:"camera" yaml:"camera"`
	Controls model.Controls `mapstructure:"controls" yaml:"controls"`
	Assets   AssetsConfig   `mapstructure:"assets" yaml:"assets"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	HUD      HUDConfig      `mapstructure:"hud" yaml:"hud"`
}

type WindowConfig struct {
	Title      string `mapstructure:"title" yaml:"title"`
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Fullscreen bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	VSync      bool   `mapstructure:"vsync" yaml:"vsync"`
}

type RenderConfig struct {
	Backend      string        `mapstructure:"backend" yaml:"backend"`
	WallScale    float64       `mapstructure:"wall_scale" yaml:"wall_scale"`
	CeilingColor uint32        `mapstructure:"ceiling_color" yaml:"ceiling_color"`
	FloorColor   uint32        `mapstructure:"floor_color" yaml:"floor_color"`
	Fisheye      string        `mapstructure:"fisheye" yaml:"fisheye"`
	IdleSleep    time.Duration `mapstructure:"idle_sleep" yaml:"idle_sleep"`
}

// CameraConfig is the spawn pose. FOV is in degrees.
type CameraConfig struct {
	X       float64 `mapstructure:"x" yaml:"x"`
	Y       float64 `mapstructure:"y" yaml:"y"`
	FacingX float64 `mapstructure:"facing_x" yaml:"facing_x"`
	FacingY float64 `mapstructure:"facing_y" yaml:"facing_y"`
	FOV     float64 `mapstructure:"fov" yaml:"fov"`
	Radius  float64 `mapstructure:"radius" yaml:"radius"`
}

// AssetsConfig locates the map and texture sheet. Empty paths select the
// embedded map and the generated sheet.
type AssetsConfig struct {
	Map      string `mapstructure:"map" yaml:"map"`
	Atlas    string `mapstructure:"atlas" yaml:"atlas"`
	TilesX   int    `mapstructure:"tiles_x" yaml:"tiles_x"`
	TilesY   int    `mapstructure:"tiles_y" yaml:"tiles_y"`
	TileSize int    `mapstructure:"tile_size" yaml:"tile_size"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type HUDConfig struct {
	Minimap bool `mapstructure:"minimap" yaml:"minimap"`
	ShowFPS bool `mapstructure:"show_fps" yaml:"show_fps"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "wolf3d-clone",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			Backend:      BackendEbiten,
			WallScale:    engine.DefaultWallScale,
			CeilingColor: engine.DefaultCeilingColor,
			FloorColor:   engine.DefaultFloorColor,
			Fisheye:      string(engine.FisheyeUniform),
			IdleSleep:    engine.DefaultIdleSleep,
		},
		Camera: CameraConfig{
			X:       5.1,
			Y:       5.1,
			FacingX: 1,
			FacingY: 0,
			FOV:     72,
			Radius:  model.DefaultRadius,
		},
		Controls: model.Controls{
			Speed:    0.15,
			MoveStep: 0.3,
			TurnStep: math.Pi / 20,
		},
		Assets: AssetsConfig{
			TilesX:   6,
			TilesY:   19,
			TileSize: 64,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		HUD: HUDConfig{
			Minimap: true,
			ShowFPS: true,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Render.Backend {
	case BackendEbiten, BackendSDL, BackendTerminal:
	default:
		return fmt.Errorf("render.backend: unknown backend %q", c.Render.Backend)
	}
	if _, err := engine.ParseFisheye(c.Render.Fisheye); err != nil {
		return fmt.Errorf("render.fisheye: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.WallScale <= 0 {
		return fmt.Errorf("render.wall_scale: %v must be positive", c.Render.WallScale)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov: %v must be between 0 and 180 degrees", c.Camera.FOV)
	}
	if c.Assets.TilesX <= 0 || c.Assets.TilesY <= 0 || c.Assets.TileSize <= 0 {
		return fmt.Errorf("assets: tile grid %dx%d of %dpx must be positive",
			c.Assets.TilesX, c.Assets.TilesY, c.Assets.TileSize)
	}
	return nil
}

// ProjectorOptions maps the render section onto projector settings.
func (c *Config) ProjectorOptions() (engine.ProjectorOptions, error) {
	var opts engine.ProjectorOptions
	if err := copier.Copy(&opts, &c.Render); err != nil {
		return opts, fmt.Errorf("mapping render options: %w", err)
	}
	mode, err := engine.ParseFisheye(c.Render.Fisheye)
	if err != nil {
		return opts, err
	}
	opts.Fisheye = mode
	return opts, nil
}
