package engine

import (
	"fmt"
	"math"

	"github.com/e6quisitory/wolf3d-clone/model"
)

// Fisheye selects how hit distances are corrected before projection.
type Fisheye string

const (
	// FisheyeUniform scales every column by cos(fov/2).
	FisheyeUniform Fisheye = "uniform"
	// FisheyePerColumn scales each column by the cosine of its own angle offset.
	FisheyePerColumn Fisheye = "per_column"
)

func ParseFisheye(s string) (Fisheye, error) {
	switch Fisheye(s) {
	case FisheyeUniform, "":
		return FisheyeUniform, nil
	case FisheyePerColumn:
		return FisheyePerColumn, nil
	}
	return "", fmt.Errorf("unknown fisheye mode %q", s)
}

// Next returns the other correction mode.
func (f Fisheye) Next() Fisheye {
	if f == FisheyePerColumn {
		return FisheyeUniform
	}
	return FisheyePerColumn
}

const (
	DefaultWallScale    = 830
	DefaultCeilingColor = 0xFF323232
	DefaultFloorColor   = 0xFF606060

	// maxWallHeight bounds projections of hits at or near zero distance.
	maxWallHeight = 1 << 20
)

// flatColor is the wall colour used when no atlas is attached. Boundary
// hits outside the map have no orientation and draw as vertical walls.
func flatColor(o model.Orientation) uint32 {
	switch o {
	case model.Horizontal, model.Corner:
		return 0xFFAAAAAA
	}
	return 0xFFDCDCDC
}

type ProjectorOptions struct {
	// WallScale is the projected height in pixels of a wall at distance 1.
	WallScale    float64
	CeilingColor uint32
	FloorColor   uint32
	Fisheye      Fisheye
}

func DefaultProjectorOptions() ProjectorOptions {
	return ProjectorOptions{
		WallScale:    DefaultWallScale,
		CeilingColor: DefaultCeilingColor,
		FloorColor:   DefaultFloorColor,
		Fisheye:      FisheyeUniform,
	}
}

// Projector turns ray hits into textured wall columns.
type Projector struct {
	opts  ProjectorOptions
	atlas *Atlas
	hits  []model.HitInfo
}

// NewProjector returns a projector sampling walls from atlas. A nil atlas
// draws walls in a flat colour per orientation.
func NewProjector(atlas *Atlas, opts ProjectorOptions) *Projector {
	if opts.WallScale <= 0 {
		opts.WallScale = DefaultWallScale
	}
	if opts.Fisheye == "" {
		opts.Fisheye = FisheyeUniform
	}
	return &Projector{opts: opts, atlas: atlas}
}

func (p *Projector) Options() ProjectorOptions { return p.opts }

func (p *Projector) SetFisheye(mode Fisheye) { p.opts.Fisheye = mode }

// Hits returns the per-column hits of the last Render.
func (p *Projector) Hits() []model.HitInfo { return p.hits }

// CorrectedDistance removes fisheye distortion from a hit distance for a
// column at screen fraction f.
func (p *Projector) CorrectedDistance(cam *model.Camera, distance, f float64) float64 {
	if p.opts.Fisheye == FisheyePerColumn {
		return distance * math.Cos(cam.AngleOffset(f))
	}
	return distance * math.Cos(cam.FOV()/2)
}

// WallHeight is the projected height in pixels of a wall at distance.
func (p *Projector) WallHeight(distance float64) int {
	h := p.opts.WallScale / distance
	if distance <= 0 || h > maxWallHeight {
		return maxWallHeight
	}
	return int(h)
}

// Span returns the rows [start, end) covered by a wall of height h on a
// screen of screenHeight rows.
func (p *Projector) Span(h, screenHeight int) (start, end int) {
	start = screenHeight/2 - h/2
	end = screenHeight/2 + h/2
	if start < 0 {
		start = 0
	}
	if end > screenHeight {
		end = screenHeight
	}
	return start, end
}

// TexV returns the vertical texture coordinate for row j of a wall of height
// h starting at start. Walls taller than the screen sample only their
// visible middle.
func (p *Projector) TexV(j, start, h, screenHeight int) float64 {
	if h <= screenHeight {
		return float64(j-start) / float64(h)
	}
	return float64((h-screenHeight)/2+j) / float64(h)
}

// RenderColumn casts the ray for column i and draws the ceiling, floor and
// wall slice into dst.
func (p *Projector) RenderColumn(dst *Image, cam *model.Camera, grid model.Grid, i int) model.HitInfo {
	width, height := dst.Width(), dst.Height()
	f := float64(i) / float64(width)
	hit := model.Cast(grid, cam.Ray(f))

	dst.FillColumn(i, 0, height/2, p.opts.CeilingColor)
	dst.FillColumn(i, height/2, height, p.opts.FloorColor)

	if !hit.Hit {
		return hit
	}

	h := p.WallHeight(p.CorrectedDistance(cam, hit.Distance, f))
	start, end := p.Span(h, height)

	if p.atlas == nil {
		dst.FillColumn(i, start, end, flatColor(hit.Orientation))
		return hit
	}

	for j := start; j < end; j++ {
		dst.Set(i, j, p.atlas.Sample(hit.TextureID, hit.WidthPercent, p.TexV(j, start, h, height)))
	}
	return hit
}

// Render draws a full frame and returns the hit for every column.
func (p *Projector) Render(dst *Image, cam *model.Camera, grid model.Grid) []model.HitInfo {
	if cap(p.hits) < dst.Width() {
		p.hits = make([]model.HitInfo, dst.Width())
	}
	p.hits = p.hits[:dst.Width()]

	for i := 0; i < dst.Width(); i++ {
		p.hits[i] = p.RenderColumn(dst, cam, grid, i)
	}
	return p.hits
}
