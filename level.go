package main

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/assets"
	"github.com/e6quisitory/wolf3d-clone/config"
	"github.com/e6quisitory/wolf3d-clone/logger"
	"github.com/e6quisitory/wolf3d-clone/model"
)

// loadLevel reads the configured map, falling back to the embedded one.
func loadLevel(cfg config.AssetsConfig) (*model.GridMap, error) {
	var (
		grid   *model.GridMap
		err    error
		source = cfg.Map
	)
	if source == "" {
		source = "embedded"
		grid, err = model.ParseMap(bytes.NewReader(assets.DefaultMap))
	} else {
		grid, err = model.LoadMap(source)
	}
	if err != nil {
		return nil, fmt.Errorf("loading map %s: %w", source, err)
	}

	logger.Info("map loaded",
		zap.String("source", source),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()))
	return grid, nil
}
