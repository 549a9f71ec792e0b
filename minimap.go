package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/e6quisitory/wolf3d-clone/model"
)

const (
	minimapScale  = 8
	minimapMargin = 10
	// draw one ray of this many screen columns
	minimapRayStride = 16
)

var (
	minimapWall   = color.RGBA{50, 50, 50, 255}
	minimapCorner = color.RGBA{90, 70, 50, 255}
	minimapOpen   = color.RGBA{200, 200, 200, 255}
	minimapRay    = color.RGBA{255, 220, 0, 160}
	minimapPlayer = color.RGBA{255, 0, 0, 255}
)

// minimap is a top-down overlay of the grid and the current view.
type minimap struct {
	static *ebiten.Image
}

func newMinimap(grid model.Grid) *minimap {
	img := ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tileColor := minimapOpen
			if grid.IsSolid(x, y) {
				tileColor = minimapWall
				if grid.CellAt(x, y).Orientation == model.Corner {
					tileColor = minimapCorner
				}
			}
			vector.DrawFilledRect(img, float32(x*minimapScale), float32(y*minimapScale),
				float32(minimapScale), float32(minimapScale), tileColor, false)
		}
	}
	return &minimap{static: img}
}

// toScreen maps a world point into screen space, anchored top-right.
func (m *minimap) toScreen(screen *ebiten.Image, wx, wy float64) (float32, float32) {
	ox := screen.Bounds().Dx() - m.static.Bounds().Dx() - minimapMargin
	return float32(ox) + float32(wx*minimapScale), float32(minimapMargin) + float32(wy*minimapScale)
}

func (m *minimap) draw(screen *ebiten.Image, cam *model.Camera, hits []model.HitInfo) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-m.static.Bounds().Dx()-minimapMargin), minimapMargin)
	screen.DrawImage(m.static, op)

	pos := cam.Position()
	px, py := m.toScreen(screen, pos.X, pos.Y)

	for i := 0; i < len(hits); i += minimapRayStride {
		if !hits[i].Hit {
			continue
		}
		hx, hy := m.toScreen(screen, hits[i].Point.X, hits[i].Point.Y)
		vector.StrokeLine(screen, px, py, hx, hy, 1, minimapRay, false)
	}

	facing := cam.Facing()
	fx, fy := m.toScreen(screen, pos.X+facing.X, pos.Y+facing.Y)
	vector.StrokeLine(screen, px, py, fx, fy, 2, minimapPlayer, true)
	vector.DrawFilledCircle(screen, px, py, minimapScale/2, minimapPlayer, true)
}
