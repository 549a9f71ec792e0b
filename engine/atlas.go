package engine

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/png"

	"github.com/harbdog/raycaster-go/geom"
	_ "golang.org/x/image/bmp"
)

var ErrBadAtlas = errors.New("texture sheet does not fit its tile grid")

// MissingTexel is returned for samples that fall outside the sheet.
const MissingTexel uint32 = 0xFFFF00FF

// Atlas is a texture sheet cut into TilesX by TilesY square tiles.
type Atlas struct {
	sheet    *Image
	tilesX   int
	tilesY   int
	tileSize int
}

// NewAtlas converts img into an atlas. The sheet must be at least
// tilesX*tileSize wide and tilesY*tileSize tall.
func NewAtlas(img image.Image, tilesX, tilesY, tileSize int) (*Atlas, error) {
	if tilesX <= 0 || tilesY <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%dx%d tiles of %dpx: %w", tilesX, tilesY, tileSize, ErrBadAtlas)
	}
	b := img.Bounds()
	if b.Dx() < tilesX*tileSize || b.Dy() < tilesY*tileSize {
		return nil, fmt.Errorf("sheet %dx%d, want at least %dx%d: %w",
			b.Dx(), b.Dy(), tilesX*tileSize, tilesY*tileSize, ErrBadAtlas)
	}

	sheet := NewImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			sheet.Set(x, y, ARGB(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}

	return &Atlas{sheet: sheet, tilesX: tilesX, tilesY: tilesY, tileSize: tileSize}, nil
}

// LoadAtlas decodes a BMP or PNG texture sheet.
func LoadAtlas(path string, tilesX, tilesY, tileSize int) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture sheet %s: %w", path, err)
	}
	return NewAtlas(img, tilesX, tilesY, tileSize)
}

func (a *Atlas) TilesX() int   { return a.tilesX }
func (a *Atlas) TilesY() int   { return a.tilesY }
func (a *Atlas) TileSize() int { return a.tileSize }

// Tile returns the tile column and row for a texture id. Ids are 1-based
// within a row, so ids 0 and 1 land on column -1 and 0 respectively.
func (a *Atlas) Tile(textureID int) (tileX, tileY int) {
	return textureID%a.tilesX - 1, textureID / a.tilesX
}

// Texel returns pixel (u, v) of a texture's tile, or MissingTexel when the
// tile lies outside the sheet.
func (a *Atlas) Texel(textureID, u, v int) uint32 {
	tx, ty := a.Tile(textureID)
	if tx < 0 || ty < 0 || tx >= a.tilesX || ty >= a.tilesY {
		return MissingTexel
	}
	u = geom.ClampInt(u, 0, a.tileSize-1)
	v = geom.ClampInt(v, 0, a.tileSize-1)
	return a.sheet.At(tx*a.tileSize+u, ty*a.tileSize+v)
}

// Sample returns the texel at normalized tile coordinates u, v in [0, 1).
func (a *Atlas) Sample(textureID int, u, v float64) uint32 {
	return a.Texel(textureID, int(u*float64(a.tileSize)), int(v*float64(a.tileSize)))
}
