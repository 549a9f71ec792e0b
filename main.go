package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/config"
	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/engine/terminal"
	"github.com/e6quisitory/wolf3d-clone/engine/window"
	"github.com/e6quisitory/wolf3d-clone/logger"
	"github.com/e6quisitory/wolf3d-clone/model"
)

func main() {
	fs := pflag.NewFlagSet("wolf3d-clone", pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(fs); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote config to %s\n", path)
		return
	}
	if config.SaveConfigRequested(fs) {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved config to %s\n", config.ConfigDir())
		return
	}

	if err := initLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exiting", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// initLogging keeps log lines off the screen when the terminal backend owns it.
func initLogging(cfg *config.Config) error {
	if cfg.Render.Backend != config.BackendTerminal {
		return logger.Init(cfg.Logging.Level, cfg.Logging.File)
	}
	fileCfg := logger.FileConfig{}
	if cfg.Logging.File != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.File)
	}
	return logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false)
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grid, err := loadLevel(cfg.Assets)
	if err != nil {
		return err
	}
	atlas, err := loadTextures(cfg.Assets)
	if err != nil {
		return err
	}

	cam, err := model.NewCamera(grid,
		geom.Vector2{X: cfg.Camera.X, Y: cfg.Camera.Y},
		geom.Vector2{X: cfg.Camera.FacingX, Y: cfg.Camera.FacingY},
		cfg.Camera.FOV)
	if err != nil {
		return fmt.Errorf("placing camera: %w", err)
	}
	cam.SetRadius(cfg.Camera.Radius)

	opts, err := cfg.ProjectorOptions()
	if err != nil {
		return err
	}
	eng := engine.New(grid, cam, engine.NewProjector(atlas, opts), engine.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Controls:  cfg.Controls,
		IdleSleep: cfg.Render.IdleSleep,
	})

	logger.Info("starting renderer",
		zap.String("backend", cfg.Render.Backend),
		zap.String("fisheye", cfg.Render.Fisheye),
		zap.Float64("fov", cfg.Camera.FOV))

	switch cfg.Render.Backend {
	case config.BackendSDL:
		w, err := window.New(window.Config{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			VSync:      cfg.Window.VSync,
		})
		if err != nil {
			return err
		}
		defer w.Close()
		return eng.Run(ctx, w)

	case config.BackendTerminal:
		term, err := terminal.New()
		if err != nil {
			return err
		}
		defer term.Close()
		eng.Resize(term.Size())
		return eng.Run(ctx, term)

	default:
		game, err := NewGame(cfg, eng)
		if err != nil {
			return err
		}
		return game.Run()
	}
}
