package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/e6quisitory/wolf3d-clone/config"
	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/logger"
)

// Game adapts the engine to ebiten's update/draw loop.
type Game struct {
	cfg    *config.Config
	engine *engine.Engine

	// scene holds the last rendered frame on the GPU side
	scene  *ebiten.Image
	pixels []byte

	minimap     *minimap
	hud         *hud
	paused      bool
	showMinimap bool
}

func NewGame(cfg *config.Config, eng *engine.Engine) (*Game, error) {
	h, err := newHUD(cfg.HUD)
	if err != nil {
		return nil, err
	}

	frame := eng.Frame()
	g := &Game{
		cfg:         cfg,
		engine:      eng,
		scene:       ebiten.NewImage(frame.Width(), frame.Height()),
		minimap:     newMinimap(eng.Grid()),
		hud:         h,
		showMinimap: cfg.HUD.Minimap,
	}
	return g, nil
}

// Run opens the ebiten window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetFullscreen(g.cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(g.cfg.Window.VSync)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	logger.Sugar.Infof("starting ebiten backend at %dx%d", g.cfg.Window.Width, g.cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update is called by ebiten every tick.
func (g *Game) Update() error {
	return g.handleInput()
}

// Draw renders a new frame only when the pose changed since the last one.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.engine.Dirty() {
		g.pixels = g.engine.Render().RGBAInto(g.pixels)
		g.scene.WritePixels(g.pixels)
	}
	screen.DrawImage(g.scene, nil)

	if g.showMinimap {
		g.minimap.draw(screen, g.engine.Camera(), g.engine.Projector().Hits())
	}
	g.hud.draw(screen, g)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	frame := g.engine.Frame()
	return frame.Width(), frame.Height()
}
