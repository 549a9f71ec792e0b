package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Axis identifies which kind of grid line a ray crossed last.
type Axis int

const (
	AxisX Axis = iota // crossed a vertical grid line, stepped along x
	AxisY             // crossed a horizontal grid line, stepped along y
)

// HitInfo is the result of casting one ray.
type HitInfo struct {
	Hit bool
	// Distance is the Euclidean distance from the ray origin to the hit point.
	Distance float64
	// WidthPercent is the position across the struck face, in [0, 1).
	WidthPercent float64
	TextureID    int
	Orientation  Orientation
	Cell         IVec2
	Side         Axis
	Point        geom.Vector2
}

// Cast walks r across g one grid line at a time and returns the first solid
// cell it enters. Cells outside g are solid, so every ray starting inside g
// terminates; a step cap covers malformed input.
func Cast(g Grid, r Ray) HitInfo {
	if r.Degenerate() {
		return HitInfo{}
	}

	dir := r.Direction
	cellX := int(math.Floor(r.Origin.X))
	cellY := int(math.Floor(r.Origin.Y))

	deltaDistX := math.Inf(1)
	if dir.X != 0 {
		deltaDistX = math.Abs(1 / dir.X)
	}
	deltaDistY := math.Inf(1)
	if dir.Y != 0 {
		deltaDistY = math.Abs(1 / dir.Y)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	switch {
	case dir.X < 0:
		stepX = -1
		sideDistX = (r.Origin.X - float64(cellX)) * deltaDistX
	case dir.X > 0:
		stepX = 1
		sideDistX = (float64(cellX) + 1 - r.Origin.X) * deltaDistX
	default:
		sideDistX = math.Inf(1)
	}
	switch {
	case dir.Y < 0:
		stepY = -1
		sideDistY = (r.Origin.Y - float64(cellY)) * deltaDistY
	case dir.Y > 0:
		stepY = 1
		sideDistY = (float64(cellY) + 1 - r.Origin.Y) * deltaDistY
	default:
		sideDistY = math.Inf(1)
	}

	maxSteps := 2*(g.Width()+g.Height()) + 4
	for i := 0; i < maxSteps; i++ {
		var side Axis
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			cellX += stepX
			side = AxisX
		} else {
			sideDistY += deltaDistY
			cellY += stepY
			side = AxisY
		}

		if !g.IsSolid(cellX, cellY) {
			continue
		}

		// t is in direction-lengths
		var t float64
		if side == AxisX {
			t = sideDistX - deltaDistX
		} else {
			t = sideDistY - deltaDistY
		}
		point := r.At(t)

		var width float64
		if side == AxisX {
			width = point.Y - math.Floor(point.Y)
			if dir.X < 0 {
				width = 1 - width
			}
		} else {
			width = point.X - math.Floor(point.X)
			if dir.Y > 0 {
				width = 1 - width
			}
		}
		if width >= 1 || width < 0 {
			width = 0
		}

		cell := g.CellAt(cellX, cellY)
		return HitInfo{
			Hit:          true,
			Distance:     t * math.Hypot(dir.X, dir.Y),
			WidthPercent: width,
			TextureID:    cell.TextureID,
			Orientation:  cell.Orientation,
			Cell:         IVec2{X: cellX, Y: cellY},
			Side:         side,
			Point:        point,
		}
	}

	return HitInfo{}
}
