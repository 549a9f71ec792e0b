package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/config"
	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/logger"
)

// loadTextures reads the configured texture sheet or generates one.
func loadTextures(cfg config.AssetsConfig) (*engine.Atlas, error) {
	if cfg.Atlas == "" {
		atlas, err := engine.GenerateAtlas(cfg.TilesX, cfg.TilesY, cfg.TileSize)
		if err != nil {
			return nil, fmt.Errorf("generating texture sheet: %w", err)
		}
		logger.Info("using generated texture sheet",
			zap.Int("tiles_x", cfg.TilesX),
			zap.Int("tiles_y", cfg.TilesY),
			zap.Int("tile_size", cfg.TileSize))
		return atlas, nil
	}

	atlas, err := engine.LoadAtlas(cfg.Atlas, cfg.TilesX, cfg.TilesY, cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("loading texture sheet: %w", err)
	}
	logger.Info("texture sheet loaded", zap.String("path", cfg.Atlas))
	return atlas, nil
}
