package engine

import (
	"image"
	"image/color"
)

var brickPalette = []color.RGBA{
	{R: 150, G: 60, B: 45, A: 255},
	{R: 110, G: 110, B: 120, A: 255},
	{R: 70, G: 100, B: 160, A: 255},
	{R: 90, G: 130, B: 70, A: 255},
	{R: 160, G: 130, B: 70, A: 255},
	{R: 120, G: 80, B: 130, A: 255},
}

var mortar = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// GenerateAtlas builds a sheet of brick tiles for use when no texture sheet
// is configured. Each tile gets a palette colour that varies with its
// position so neighbouring ids stay distinguishable.
func GenerateAtlas(tilesX, tilesY, tileSize int) (*Atlas, error) {
	if tilesX <= 0 || tilesY <= 0 || tileSize <= 0 {
		return NewAtlas(image.NewRGBA(image.Rect(0, 0, 0, 0)), tilesX, tilesY, tileSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, tilesX*tileSize, tilesY*tileSize))
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			drawBrickTile(img, tx*tileSize, ty*tileSize, tileSize, tileColor(tx, ty))
		}
	}
	return NewAtlas(img, tilesX, tilesY, tileSize)
}

func tileColor(tx, ty int) color.RGBA {
	c := brickPalette[tx%len(brickPalette)]
	shade := 1 - float64(ty%4)*0.15
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: 255,
	}
}

func drawBrickTile(img *image.RGBA, ox, oy, size int, base color.RGBA) {
	rowHeight := size / 4
	if rowHeight == 0 {
		rowHeight = 1
	}
	brickWidth := size / 2
	if brickWidth == 0 {
		brickWidth = 1
	}

	for y := 0; y < size; y++ {
		row := y / rowHeight
		offset := 0
		if row%2 == 1 {
			offset = brickWidth / 2
		}
		for x := 0; x < size; x++ {
			c := base
			if y%rowHeight == 0 || (x+offset)%brickWidth == 0 {
				c = mortar
			} else if (x*7+y*13)%11 == 0 {
				c.R, c.G, c.B = c.R/8*7, c.G/8*7, c.B/8*7
			}
			img.SetRGBA(ox+x, oy+y, c)
		}
	}
}
