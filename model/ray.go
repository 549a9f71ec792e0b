package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

// Ray is a half-line from Origin along Direction. Direction need not be
// normalized.
type Ray struct {
	Origin    geom.Vector2
	Direction geom.Vector2
}

func NewRay(origin, direction geom.Vector2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point reached after travelling t direction-lengths.
func (r Ray) At(t float64) geom.Vector2 {
	return geom.Vector2{
		X: r.Origin.X + r.Direction.X*t,
		Y: r.Origin.Y + r.Direction.Y*t,
	}
}

// Degenerate reports whether both direction components are zero.
func (r Ray) Degenerate() bool {
	return r.Direction.X == 0 && r.Direction.Y == 0
}
