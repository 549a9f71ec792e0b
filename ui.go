package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/e6quisitory/wolf3d-clone/config"
)

const (
	hudFontSize   = 14
	hudLineHeight = 18
	hudMargin     = 10
)

var hudColor = color.RGBA{255, 255, 255, 220}

type hud struct {
	cfg  config.HUDConfig
	face text.Face
}

func newHUD(cfg config.HUDConfig) (*hud, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing hud font: %w", err)
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &hud{cfg: cfg, face: text.NewGoXFace(face)}, nil
}

func (h *hud) print(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, h.face, op)
}

func (h *hud) draw(screen *ebiten.Image, g *Game) {
	screenHeight := screen.Bounds().Dy()
	line := hudMargin

	if h.cfg.ShowFPS {
		h.print(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), hudMargin, line)
		line += hudLineHeight
	}

	cam := g.engine.Camera()
	pos, facing := cam.Position(), cam.Facing()
	heading := geom.Degrees(math.Atan2(facing.Y, facing.X))
	h.print(screen, fmt.Sprintf("pos: %0.2f, %0.2f  heading: %0.1f°", pos.X, pos.Y, heading), hudMargin, line)
	line += hudLineHeight
	h.print(screen, fmt.Sprintf("fisheye: %s", g.engine.Projector().Options().Fisheye), hudMargin, line)

	if g.paused {
		h.print(screen, "PAUSED", hudMargin, line+hudLineHeight)
	}

	h.print(screen, "move with WASD or arrows, turn with left/right", hudMargin, screenHeight-3*hudLineHeight)
	h.print(screen, "F fisheye, M minimap, R reset, P pause", hudMargin, screenHeight-2*hudLineHeight)
	h.print(screen, "ESC to exit", hudMargin, screenHeight-hudLineHeight)
}
